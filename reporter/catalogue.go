package reporter

import "fmt"

// Code is a CONTRL-catalogue syntax error code, transcribed from
// `SyntaxError` in edifact-rs's `src/mig/error.rs`.
type Code int

const (
	CodeInvalidValue                 Code = 12
	CodeMissing                      Code = 13
	CodeTooManyParts                 Code = 16
	CodeInvalidFormat                Code = 37
	CodeMissingDigitInFrontOfDecimal Code = 38
	CodeDataElementTooLong           Code = 39
	CodeDataElementTooShort          Code = 40

	// Declared for completeness of the taxonomy but never produced by this
	// core (§4.4, §9): these are all service-segment/interchange-level
	// checks (UNA/UNB character and reference validation, duplicate and
	// test-flag detection, segment/segment-group repetition counts) that
	// this decode call, scoped to a single already-resolved interchange,
	// does not perform.
	codeSyntaxVersionOrLevelNotSupported Code = 2
	codeReceiverIsNotActualReceiver      Code = 7
	codeNotSupportedAtThisPosition       Code = 15
	codeInvalidServiceChars              Code = 20
	codeInvalidCharacters                Code = 21
	codeUnknownSender                    Code = 23
	codeTestNotSupported                 Code = 25
	codeDuplicateFound                   Code = 26
	codeReferencesNotEqual               Code = 28
	codeCounterNotEqual                  Code = 29
	codeLowerLevelsEmpty                 Code = 32
	codeTooManySegmentRepetitions        Code = 35
	codeTooManySegmentGroupRepetitions   Code = 36
)

type catalogueEntry struct {
	name    string
	message string
}

// catalogue is transcribed verbatim (code, name, message) from the
// SyntaxError constructors in edifact-rs's src/mig/error.rs, including its
// own copy-paste mistake: codes 39 and 40 share the identical German
// message text ("...überschreitet", "too long") in the source, even though
// 40 is the too-short case.
var catalogue = map[Code]catalogueEntry{
	codeSyntaxVersionOrLevelNotSupported: {
		"syntax_version_or_level_not_supported",
		"Mitteilung, dass die Syntax-Version und/oder -ebene vom Empfänger nicht unterstützt wird.",
	},
	codeReceiverIsNotActualReceiver: {
		"receiver_is_not_actual_receiver",
		"Mitteilung, dass der Empfänger der Übertragungsdatei (S003) vom tatsächlichen Empfänger abweicht.",
	},
	CodeInvalidValue: {
		"invalid_value",
		"Mitteilung, dass der Wert eines einfachen Datenelements, einer Datenelementgruppe oder eines Gruppendatenelements nicht den entsprechenden Spezifikationen entspricht.",
	},
	CodeMissing: {
		"missing",
		"Mitteilung, dass ein mit M oder R gekennzeichnetes Service- oder Nutzdaten-Segment, Datenelement, eine Datenelementgruppe oder ein Gruppendatenelement fehlt.",
	},
	codeNotSupportedAtThisPosition: {
		"not_supported_at_this_position",
		"Mitteilung, dass der Empfänger die Verwendung des Typs von Segment, an der identifizierten Position nicht unterstützt.",
	},
	CodeTooManyParts: {
		"too_many_parts",
		"Mitteilung, dass das identifizierte Segment zu viele Datenelemente oder Datenelementgruppen enthält.",
	},
	codeInvalidServiceChars: {
		"invalid_service_chars",
		"Mitteilung, dass ein im UNA angezeigtes Zeichen als Service-Zeichen ungültig ist.",
	},
	codeInvalidCharacters: {
		"invalid_characters",
		"Mitteilung, dass ein oder mehrere in der Übertragungsdatei verwendete Zeichen nach der definierten Syntax-Ebene im Segment UNB ungültig sind. Das ungültige Zeichen ist Teil der Bezugsebene oder folgt unmittelbar dem identifizierten Teil der Übertragungsdatei.",
	},
	codeUnknownSender: {
		"unknown_sender",
		"Mitteilung, dass ein oder mehrere in der Übertragungsdatei verwendete Zeichen nach der definierten Syntax-Ebene im Segment UNB ungültig sind. Das ungültige Zeichen ist Teil der Bezugsebene oder folgt unmittelbar dem identifizierten Teil der Übertragungsdatei.",
	},
	codeTestNotSupported: {
		"test_not_supported",
		"Mitteilung, dass die Test-Verarbeitung für die angegebene Übertragungsdatei, Nachrichtengruppe oder Nachricht nicht durchgeführt werden konnte.",
	},
	codeDuplicateFound: {
		"duplicate_found",
		"Mitteilung, dass ein mögliches Duplikat einer früher empfangenen Übertragungsdatei gefunden wurde. Die frühere Übertragung kann zurückgewiesen worden sein (Datenaustauschreferenz des Absenders bei Empfänger bereits bekannt).",
	},
	codeReferencesNotEqual: {
		"references_not_equal",
		"Mitteilung, dass die Prüfreferenzen im Segment UNB nicht denen in den Segment UNZ entsprechen.",
	},
	codeCounterNotEqual: {
		"counter_not_equal",
		"Mitteilung, dass die Anzahl der Nachrichten nicht der im Segment UNZ angegebenen Anzahl entspricht.",
	},
	codeLowerLevelsEmpty: {
		"lower_levels_empty",
		"Mitteilung, dass die Übertragungsdatei keine Nachrichten enthielt.",
	},
	codeTooManySegmentRepetitions: {
		"too_many_segment_repetitions",
		"Mitteilung, dass ein Segment zu oft wiederholt wurde.",
	},
	codeTooManySegmentGroupRepetitions: {
		"too_many_segmentgroup_repetitions",
		"Mitteilung, dass eine Segmentgruppe zu oft wiederholt wurde.",
	},
	CodeInvalidFormat: {
		"invalid_format",
		"Mitteilung, dass ein oder mehrere numerische Zeichen in einem alphabetischen (Gruppen-)Datenelement oder ein oder mehrere alphabetische Zeichen in einem numerischen (Gruppen-)Datenelement verwendet wurden.",
	},
	CodeMissingDigitInFrontOfDecimal: {
		"missing_digit_in_front_of_decimal",
		"Mitteilung, dass vor einem Dezimalzeichen nicht eine oder mehrere Ziffern stehen.",
	},
	CodeDataElementTooLong: {
		"data_element_too_long",
		"Mitteilung, dass die Länge eines empfangenen Datenelements die maximale Länge nach der Datenelementbeschreibung überschreitet.",
	},
	CodeDataElementTooShort: {
		"data_element_too_short",
		"Mitteilung, dass die Länge eines empfangenen Datenelements die maximale Länge nach der Datenelementbeschreibung überschreitet.",
	},
}

// SyntaxError is a leaf error drawn from the closed CONTRL catalogue (§4.4).
type SyntaxError struct {
	Code Code
}

// NewSyntaxError constructs a SyntaxError for one of the catalogue codes
// used by this core; it panics if code is not a recognized catalogue entry,
// since producing an error outside the closed catalogue is a programming
// bug, not a runtime condition.
func NewSyntaxError(code Code) SyntaxError {
	if _, ok := catalogue[code]; !ok {
		panic(fmt.Sprintf("reporter: unknown syntax error code %d", code))
	}
	return SyntaxError{Code: code}
}

// Name returns the catalogue's short identifier for this error, e.g.
// "missing" or "too_many_parts".
func (e SyntaxError) Name() string {
	return catalogue[e.Code].name
}

// Message returns the catalogue's long-form message, transcribed verbatim
// (German, as edi@energy publishes it).
func (e SyntaxError) Message() string {
	return catalogue[e.Code].message
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, e.Name(), e.Message())
}

var (
	ErrInvalidValue                 = NewSyntaxError(CodeInvalidValue)
	ErrMissing                      = NewSyntaxError(CodeMissing)
	ErrTooManyParts                 = NewSyntaxError(CodeTooManyParts)
	ErrInvalidFormat                = NewSyntaxError(CodeInvalidFormat)
	ErrMissingDigitInFrontOfDecimal = NewSyntaxError(CodeMissingDigitInFrontOfDecimal)
	ErrDataElementTooLong           = NewSyntaxError(CodeDataElementTooLong)
	ErrDataElementTooShort          = NewSyntaxError(CodeDataElementTooShort)
)
