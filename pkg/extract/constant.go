package extract

// Record field names shared with the assembler.
const (
	FieldTask              = "task"
	FieldDescription       = "description"
	FieldPriority          = "priority"
	FieldEstimatedDuration = "estimated_duration"
)

// SentinelTitle marks the record produced when every strategy failed.
const (
	SentinelTitle       = "Parsing Error"
	sentinelDescription = "Unable to parse tasks from response. The AI may have returned an unexpected format. Please try again."
)

// Strategy names, in cascade order.
const (
	StrategyFencedBlock = "fenced_block"
	StrategyBracketSpan = "bracket_span"
	StrategyPatternScan = "pattern_scan"
	StrategyWholeText   = "whole_text"
	StrategyLineRebuild = "line_rebuild"
	StrategyTextParser  = "text_parser"
)

// Text parser limits.
const (
	defaultPriority  = "medium"
	titleMaxRunes    = 50
	sentenceDescMax  = 200
	sentenceMinRunes = 10
)
