package catalog

import (
	"github.com/invopop/jsonschema"
)

// MonitorConnection describes the placeholders of the connect step.
type MonitorConnection struct {
	Monitor   string `json:"monitor"   jsonschema_description:"Name of the monitor as the operator sees it, e.g. HDMI-1."`
	Connector string `json:"connector" jsonschema_description:"Connector or cable the monitor is attached through, e.g. DisplayPort."`
}

// MonitorState describes the placeholders of the monitor state step.
type MonitorState struct {
	Monitor string `json:"monitor" jsonschema_description:"Name of the monitor as the operator sees it."`
	State   string `json:"state"   jsonschema_description:"State the monitor must be in, e.g. enabled or disabled."`
}

// Arrangement describes the placeholder of the arrange and verify steps.
type Arrangement struct {
	Arrangement string `json:"arrangement" jsonschema_description:"Free-form description of the expected monitor layout."`
}

// Profile describes the placeholder of the save profile step.
type Profile struct {
	ProfileName string `json:"profile_name" jsonschema_description:"Name of the display profile to create."`
}

// Dialog describes the placeholder of the close dialog step.
type Dialog struct {
	DialogType string `json:"dialog_type" jsonschema_description:"Which dialog to close, e.g. display or minimal."`
}

// StepDescription is the documentation view of a binding.
type StepDescription struct {
	Keyword      string             `json:"keyword"`
	Pattern      string             `json:"pattern"`
	Expression   string             `json:"expression"`
	Placeholders []string           `json:"placeholders,omitempty"`
	Summary      string             `json:"summary"`
	Launches     string             `json:"launches,omitempty"`
	Parameters   *jsonschema.Schema `json:"parameters,omitempty"`
}

// Describe returns one description per binding, in registration order.
func (c *Catalog) Describe() []StepDescription {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	out := make([]StepDescription, 0, len(c.bindings))
	for _, b := range c.bindings {
		d := StepDescription{
			Keyword:    b.Role.String(),
			Pattern:    b.Pattern.String(),
			Expression: b.Pattern.Expression(),
			Summary:    b.Summary,
		}
		for _, ph := range b.Pattern.Placeholders() {
			d.Placeholders = append(d.Placeholders, ph.Name)
		}
		if b.LaunchesApp {
			d.Launches = c.app
		}
		if b.Params != nil {
			d.Parameters = reflector.Reflect(b.Params)
		}
		out = append(out, d)
	}
	return out
}

