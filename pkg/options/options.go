// Package options holds the immutable configuration record for the lexer
// and parser. There is no builder and no dynamic dispatch: callers set the
// fields they need on a value returned by Default.
package options

// Options configures a Reader/Lexer/Parser pipeline.
type Options struct {
	// CloseInput closes the underlying character source on disposal.
	CloseInput bool

	// IgnoreTextOutsideDocumentMarkers skips characters until a "---"
	// document start; between documents, skips until the next "---".
	IgnoreTextOutsideDocumentMarkers bool

	// AcceptContentOnStartDocumentLine permits content on the same line as
	// "---".
	AcceptContentOnStartDocumentLine bool

	// MergeDocuments treats multiple documents as one continuous document:
	// an end-document marker ("...") does not close the open collections or
	// emit End, so parsing carries on into the next document. A "---" start
	// marker never ends a document, with or without this flag.
	MergeDocuments bool

	// ThrowOnError makes the first diagnostic raise immediately instead of
	// accumulating.
	ThrowOnError bool
}

// Default returns the baseline option set: every behavior flag off except
// ThrowOnError.
func Default() Options {
	return Options{
		CloseInput:                       false,
		IgnoreTextOutsideDocumentMarkers: false,
		AcceptContentOnStartDocumentLine: false,
		MergeDocuments:                   false,
		ThrowOnError:                     true,
	}
}
