// Package renderer builds the decorated prefix of every outgoing message from
// the current template and the active chat provider.
package renderer

import (
	"chat-formatter/binding"
	"chat-formatter/colors"
	"chat-formatter/domain"
	"chat-formatter/format"
)

type TemplateSource interface {
	Current() format.Template
}

type AttributeSource interface {
	Lookup(p domain.Participant) (binding.Attributes, bool, error)
}

type Renderer struct {
	templates  TemplateSource
	attributes AttributeSource
}

func NewRenderer(templates TemplateSource, attributes AttributeSource) *Renderer {
	return &Renderer{templates: templates, attributes: attributes}
}

// Render returns the prefix for a message sent by p.
// Provider values are normalized, nil ones shown as "null"; the name is
// inserted as is. A provider failure is returned unchanged.
func (r *Renderer) Render(p domain.Participant) (string, error) {
	template := r.templates.Current()

	attributes, ok, err := r.attributes.Lookup(p)
	if err != nil {
		return "", err
	}

	values := format.Values{Name: p.Name}
	if ok {
		values.Attributes = &format.Attributes{
			Prefix: colors.NormalizePtr(attributes.Prefix),
			Suffix: colors.NormalizePtr(attributes.Suffix),
		}
	}
	return template.Render(values), nil
}

// RenderName renders the template as if no provider were active.
func (r *Renderer) RenderName(p domain.Participant) string {
	return r.templates.Current().Render(format.Values{Name: p.Name})
}

// Decorate attaches the rendered prefix to msg without touching its content.
func (r *Renderer) Decorate(msg domain.Message) (domain.DecoratedMessage, error) {
	prefix, err := r.Render(msg.Sender)
	if err != nil {
		return domain.DecoratedMessage{Message: msg}, err
	}
	return domain.DecoratedMessage{Message: msg, Prefix: prefix}, nil
}
