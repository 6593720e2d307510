package consts

const (
	// Audio format expected from the mobile recorder
	SampleRate = 16000
	BitDepth   = 16
	Channels   = 1

	// Scoring defaults applied when a contributing signal is absent
	DefaultAccuracyScore = 80
	DefaultClarityScore  = 80

	// Provenance label stamped on every evaluation result
	EvaluatedBy = "Azure Speech Service + Custom Analysis"
)
