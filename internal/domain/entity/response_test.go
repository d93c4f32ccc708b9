package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantKind    ResponseKind
		wantComment string
	}{
		{name: "empty line confirms", line: "", wantKind: Confirm},
		{name: "bare bang aborts without comment", line: "!", wantKind: Abort},
		{name: "bang with text aborts with comment", line: "!looks broken", wantKind: Abort, wantComment: "looks broken"},
		{name: "only first bang is stripped", line: "!!twice", wantKind: Abort, wantComment: "!twice"},
		{name: "leading space before bang is a comment", line: " !not an abort", wantKind: ConfirmWithComment, wantComment: " !not an abort"},
		{name: "plain text confirms with comment", line: "looks fine to me", wantKind: ConfirmWithComment, wantComment: "looks fine to me"},
		{name: "whitespace only is a comment", line: "   ", wantKind: ConfirmWithComment, wantComment: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyResponse(tt.line)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantComment, got.Comment)
		})
	}
}

func TestOperatorResponse_AbortedAndHasComment(t *testing.T) {
	t.Run("abort without comment", func(t *testing.T) {
		r := ClassifyResponse("!")
		assert.True(t, r.Aborted())
		assert.False(t, r.HasComment())
	})

	t.Run("abort with comment", func(t *testing.T) {
		r := ClassifyResponse("!flicker on HDMI")
		assert.True(t, r.Aborted())
		assert.True(t, r.HasComment())
	})

	t.Run("confirm", func(t *testing.T) {
		r := ClassifyResponse("")
		assert.False(t, r.Aborted())
		assert.False(t, r.HasComment())
	})

	t.Run("confirm with comment", func(t *testing.T) {
		r := ClassifyResponse("took two tries")
		assert.False(t, r.Aborted())
		assert.True(t, r.HasComment())
	})
}

func TestResponseKind_String(t *testing.T) {
	assert.Equal(t, "confirm", Confirm.String())
	assert.Equal(t, "abort", Abort.String())
	assert.Equal(t, "confirm_with_comment", ConfirmWithComment.String())
	assert.Equal(t, "unknown", ResponseKind(42).String())
}
