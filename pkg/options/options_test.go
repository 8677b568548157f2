package options

import "testing"

func TestDefaultThrowsOnErrorOnly(t *testing.T) {
	d := Default()
	if !d.ThrowOnError {
		t.Error("ThrowOnError should default to true")
	}
	if d.CloseInput || d.IgnoreTextOutsideDocumentMarkers || d.AcceptContentOnStartDocumentLine || d.MergeDocuments {
		t.Error("every other option should default to false")
	}
}
