package dev

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/WorldSEnder/virtlist/internal/message"
)

var debugSet = os.Getenv("VIRTLIST_DEBUG")
var debugPath = os.Getenv("VIRTLIST_DEBUG_PATH")

func Debug(msg string) {
	if debugPath == "" {
		debugPath = "virtlist.log"
	}
	if debugSet != "" {
		file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		logger := log.New(file, "", log.Ldate|log.Lmicroseconds)
		logger.Printf("%q", msg)
	}
}

func DebugMsg(component string, msg tea.Msg) {
	switch msg.(type) {
	case message.RecomputeMsg:
	// skip logging messages that are too frequent
	default:
		Debug("--")
		Debug(fmt.Sprintf("Update %s: %T", component, msg))
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			Debug(fmt.Sprintf("  Key: '%v'", keyMsg.String()))
		}
	}
}
