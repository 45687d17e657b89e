package Queues

// Messages renders each Kind as text. The host program may replace entries, e.g. for localization;
// missing entries fall back to the Kind's name. Not safe to modify while errors are being formatted.
var Messages = map[Kind]string{
	InvalidArgument:  "Argument is out of range.",
	EmptyCollection:  "Queue empty.",
	InvalidState:     "Collection was modified after the enumerator was instantiated.",
	CapacityExceeded: "Capacity exceeds the maximum collection length.",
}
