package services

import (
	"chat-formatter/binding"
	"chat-formatter/contract"
	"chat-formatter/domain"
	"chat-formatter/errors"
	"chat-formatter/format"
	"chat-formatter/renderer"
	"fmt"
	"log/slog"
	"strings"
)

const reloadedMessage = "Reloaded successfully."

// FormatterService is the chat formatter as seen by the host: it loads its
// configuration, follows the chat provider and decorates every message.
type FormatterService struct {
	log       *slog.Logger
	loader    contract.ConfigLoader
	services  contract.IServicesManager
	templates *format.Holder
	binding   *binding.ProviderBinding
	renderer  *renderer.Renderer
}

func NewFormatterService(log *slog.Logger, loader contract.ConfigLoader, services contract.IServicesManager) *FormatterService {
	templates := format.NewHolder(format.Default())
	b := binding.NewProviderBinding(log, services)
	return &FormatterService{
		log:       log,
		loader:    loader,
		services:  services,
		templates: templates,
		binding:   b,
		renderer:  renderer.NewRenderer(templates, b),
	}
}

// Enable saves the default configuration if needed, loads the format,
// resolves the current chat provider and starts following its changes.
func (s *FormatterService) Enable() error {
	if err := s.loader.SaveDefault(); err != nil {
		return fmt.Errorf("saving default config: %w", err)
	}
	if err := s.Reload(); err != nil {
		return err
	}
	s.binding.Refresh()
	s.services.Subscribe(s.binding)
	return nil
}

// Reload re-reads the configuration and swaps the template.
func (s *FormatterService) Reload() error {
	raw, err := s.loader.LoadFormat()
	if err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	s.SetTemplate(raw)
	return nil
}

// SetTemplate normalizes raw and makes it the format of every later message.
func (s *FormatterService) SetTemplate(raw string) {
	previous := s.templates.Set(format.NewTemplate(raw))
	if previous.Raw() != raw {
		s.log.Info("Chat format changed", "format", raw)
	}
}

func (s *FormatterService) Template() format.Template {
	return s.templates.Current()
}

func (s *FormatterService) Provider() contract.ChatProvider {
	return s.binding.Current()
}

// HandleCommand answers "/chatformatter reload". Any other argument is refused.
func (s *FormatterService) HandleCommand(args []string) (string, error) {
	if len(args) == 0 || !strings.EqualFold(args[0], "reload") {
		return "", errors.ErrUnknownCommand
	}
	if err := s.Reload(); err != nil {
		return "", err
	}
	return reloadedMessage, nil
}

// OnChat decorates msg. When the provider fails the message still goes out,
// rendered as if no provider were active.
func (s *FormatterService) OnChat(msg domain.Message) domain.DecoratedMessage {
	decorated, err := s.renderer.Decorate(msg)
	if err == nil {
		return decorated
	}
	s.log.Warn("Chat provider failed, prefix and suffix skipped",
		"participant", msg.Sender.Name, "error", err)
	return domain.DecoratedMessage{Message: msg, Prefix: s.renderer.RenderName(msg.Sender)}
}
