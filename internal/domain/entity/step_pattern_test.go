package entity

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStepPattern_Placeholders(t *testing.T) {
	p, err := ParseStepPattern("the {monitor} monitor is connected (via {connector})")
	require.NoError(t, err)

	assert.Equal(t, []Placeholder{
		{Name: "monitor", Type: WordSlot},
		{Name: "connector", Type: WordSlot},
	}, p.Placeholders())
	assert.Equal(t, "the {monitor} monitor is connected (via {connector})", p.String())
}

func TestParseStepPattern_TextSlot(t *testing.T) {
	p, err := ParseStepPattern("the monitors are arranged: {arrangement:text}")
	require.NoError(t, err)

	assert.Equal(t, []Placeholder{{Name: "arrangement", Type: TextSlot}}, p.Placeholders())

	values, ok := p.Match("the monitors are arranged: eDP-1 left of HDMI-1 (primary)")
	require.True(t, ok)
	assert.Equal(t, "eDP-1 left of HDMI-1 (primary)", values["arrangement"])
}

func TestParseStepPattern_Errors(t *testing.T) {
	tests := []struct {
		name    string
		phrase  string
		wantErr error
	}{
		{name: "empty", phrase: "", wantErr: ErrEmptyStepPattern},
		{name: "whitespace", phrase: "   ", wantErr: ErrEmptyStepPattern},
		{name: "unclosed brace", phrase: "the {monitor monitor", wantErr: ErrUnbalancedBraces},
		{name: "stray closing brace", phrase: "the monitor} is on", wantErr: ErrUnbalancedBraces},
		{name: "double closing brace", phrase: "connected (via {connector}})", wantErr: ErrUnbalancedBraces},
		{name: "nested brace", phrase: "the {mon{itor}", wantErr: ErrUnbalancedBraces},
		{name: "empty name", phrase: "the {} monitor", wantErr: ErrEmptyPlaceholderName},
		{name: "duplicate name", phrase: "{a} and {a}", wantErr: ErrDuplicatePlaceholder},
		{name: "unknown slot", phrase: "{a:number}", wantErr: ErrUnknownSlotType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStepPattern(tt.phrase)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestStepPattern_Expression(t *testing.T) {
	p := MustParseStepPattern(`the new profile "{profile_name}" is saved`)

	assert.Equal(t, `^the new profile "([^"():]+)" is saved$`, p.Expression())
}

func TestStepPattern_Match(t *testing.T) {
	connected := MustParseStepPattern("the {monitor} monitor is connected (via {connector})")
	state := MustParseStepPattern("the {monitor} monitor is {state}")

	t.Run("connector pattern binds both values", func(t *testing.T) {
		values, ok := connected.Match("the HDMI-1 monitor is connected (via DisplayPort)")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"monitor": "HDMI-1", "connector": "DisplayPort"}, values)
	})

	t.Run("state pattern does not match connector text", func(t *testing.T) {
		_, ok := state.Match("the HDMI-1 monitor is connected (via DisplayPort)")
		assert.False(t, ok)
	})

	t.Run("state pattern does not match arrangement text", func(t *testing.T) {
		for _, text := range []string{
			"the monitors get arranged: the eDP-1 monitor is left of HDMI-1",
			"the monitors are arranged: the HDMI-1 monitor is primary",
		} {
			_, ok := state.Match(text)
			assert.False(t, ok, text)
		}
	})

	t.Run("dialog pattern does not match arrangement text", func(t *testing.T) {
		dialog := MustParseStepPattern("the {dialog_type} dialog is closed")
		_, ok := dialog.Match("the monitors get arranged: the display dialog is closed")
		assert.False(t, ok)
	})

	t.Run("state pattern matches plain state", func(t *testing.T) {
		values, ok := state.Match("the eDP-1 monitor is disabled")
		require.True(t, ok)
		assert.Equal(t, "disabled", values["state"])
	})

	t.Run("literal text is not treated as regexp", func(t *testing.T) {
		p := MustParseStepPattern("no profile exists.")
		_, ok := p.Match("no profile existsX")
		assert.False(t, ok)
	})

	t.Run("anchored at both ends", func(t *testing.T) {
		p := MustParseStepPattern("the configuration is applied")
		_, ok := p.Match("and the configuration is applied twice")
		assert.False(t, ok)
	})
}

func TestMustParseStepPattern_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseStepPattern("{") })
}

func TestStepRole_String(t *testing.T) {
	assert.Equal(t, "Given", Given.String())
	assert.Equal(t, "When", When.String())
	assert.Equal(t, "Then", Then.String())
	assert.Equal(t, "Step", StepRole(9).String())
}
