package constants

import "time"

// *********************************************************************************************************************
// THESE ARE KEY TO SMOOTH SCROLLING ON LARGE LISTS (EXACT VALUES DETERMINED BY FEEL)

// ExtraBuffer controls the number of items materialized just outside the visible
// viewport on each side. Off-screen but materialized items get measured before
// they scroll into view, which keeps the spacer heights honest
var ExtraBuffer = 5

// DefaultScrollSampleMillis controls how long the scroll sampler suppresses raw
// scroll events after emitting one downstream. Window recomputation is O(item
// count), so raw scroll notifications must not reach it at full rate
var DefaultScrollSampleMillis = 50

// *********************************************************************************************************************

// DefaultHeightPrior is the assumed row height for items that have never been
// measured. An inaccurate value mis-represents the remaining scroll distance
// until measurements arrive, but causes no other ill effects
var DefaultHeightPrior = 2

// ToastDuration controls how long transient status messages stay visible
var ToastDuration = 3 * time.Second
