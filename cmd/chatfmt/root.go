package main

import (
	"chat-formatter/binding"
	"chat-formatter/colors"
	"chat-formatter/domain"
	"chat-formatter/errors"
	"chat-formatter/format"
	"chat-formatter/providers"
	"chat-formatter/renderer"
	"chat-formatter/repositories"
	"chat-formatter/runtime"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const owner = "chatfmt"

type app struct {
	cfg Config
	log *slog.Logger
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}
	root := &cobra.Command{
		Use:   "chatfmt",
		Short: "Preview chat formats and manage participant prefixes",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logs.GetLoggerFromString(cfg.LogLevel)
			a.log.Debug("Command started", "command", cmd.Name())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(a.normalizeCmd(), a.renderCmd(), a.metaCmd())
	return root
}

func (a *app) display(s string) string {
	if a.cfg.Colours {
		return colors.ToANSI(s)
	}
	return s
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>",
		Short: "Translate &-codes and &#rrggbb hex colours to § codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized := colors.Normalize(args[0])
			_, err := fmt.Fprintln(cmd.OutOrStdout(), normalized)
			if err != nil || !a.cfg.Colours {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), colors.ToANSI(normalized))
			return err
		},
	}
}

func (a *app) renderCmd() *cobra.Command {
	var (
		name, prefix, suffix, raw string
		noProvider                bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chat prefix of one participant",
		Example: `  chatfmt render --name Bob --prefix '&#ff0000[Admin]'
  chatfmt render --name Bob --format '{prefix}{name}: ' --no-provider`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			participant, err := domain.NewParticipant(name)
			if err != nil {
				return err
			}

			manager := runtime.NewServicesManager(a.log)
			attributes := binding.NewProviderBinding(a.log, manager)
			manager.Subscribe(attributes)
			if !noProvider {
				entry := providers.Entry{}
				if cmd.Flags().Changed("prefix") {
					entry.Prefix = lo.ToPtr(prefix)
				}
				if cmd.Flags().Changed("suffix") {
					entry.Suffix = lo.ToPtr(suffix)
				}
				provider := providers.NewStaticProvider(owner).Set(participant.Name, entry)
				if err = manager.Register(domain.ChatServiceKind, provider, owner, domain.PriorityNormal); err != nil {
					return err
				}
			}

			r := renderer.NewRenderer(format.NewHolder(format.NewTemplate(raw)), attributes)
			rendered, err := r.Render(participant)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.display(rendered))
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "participant name")
	cmd.Flags().StringVar(&prefix, "prefix", "", "provider prefix, shown as null when not given")
	cmd.Flags().StringVar(&suffix, "suffix", "", "provider suffix, shown as null when not given")
	cmd.Flags().StringVar(&raw, "format", format.DefaultFormat, "chat format")
	cmd.Flags().BoolVar(&noProvider, "no-provider", false, "render as if no chat provider were registered")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) metaCmd() *cobra.Command {
	meta := &cobra.Command{
		Use:   "meta",
		Short: "Manage the prefixes and suffixes stored for participants",
	}
	meta.AddCommand(a.metaSetCmd(), a.metaListCmd(), a.metaDeleteCmd())
	return meta
}

// withRepository opens the metadata store for the duration of fn.
func (a *app) withRepository(fn func(repositories.IMetadataRepository) error) error {
	db, err := badger.Open(badger.DefaultOptions(a.cfg.BadgerFilepath).
		WithLogger(runtime.NewStorageLogger(a.log, "metadata")).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()
	return fn(repositories.NewMetadataRepository(db, a.log))
}

func (a *app) metaSetCmd() *cobra.Command {
	var prefix, suffix string
	var reset bool
	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Set the prefix and/or suffix of a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			participant, err := domain.NewParticipant(args[0])
			if err != nil {
				return err
			}
			return a.withRepository(func(repository repositories.IMetadataRepository) error {
				metadata, err := repository.GetMetadata(participant.ID)
				if err != nil && !stderrors.Is(err, errors.ErrMetadataNotFound) {
					return err
				}
				metadata.ParticipantID = participant.ID
				metadata.Name = participant.Name
				if reset {
					metadata.Prefix, metadata.Suffix = nil, nil
				}
				if cmd.Flags().Changed("prefix") {
					metadata.Prefix = lo.ToPtr(prefix)
				}
				if cmd.Flags().Changed("suffix") {
					metadata.Suffix = lo.ToPtr(suffix)
				}
				if err = repository.SetMetadata(metadata); err != nil {
					return err
				}
				a.log.Info("Metadata saved", "participant", participant.Name, "id", participant.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix, colour codes allowed")
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix, colour codes allowed")
	cmd.Flags().BoolVar(&reset, "clear", false, "remove the stored prefix and suffix first")
	return cmd
}

func (a *app) metaDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Forget a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			participant, err := domain.NewParticipant(args[0])
			if err != nil {
				return err
			}
			return a.withRepository(func(repository repositories.IMetadataRepository) error {
				return repository.DeleteMetadata(participant.ID)
			})
		},
	}
}

func (a *app) metaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every participant with its prefix and suffix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRepository(func(repository repositories.IMetadataRepository) error {
				all, err := repository.ListMetadata()
				if err != nil {
					return err
				}
				a.writeTable(cmd.OutOrStdout(), all)
				return nil
			})
		},
	}
}

func (a *app) writeTable(out io.Writer, all []repositories.Metadata) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Participant ID", "Prefix", "Suffix", "Preview"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	template := format.Default()
	for _, md := range all {
		preview := template.Render(format.Values{
			Name: md.Name,
			Attributes: &format.Attributes{
				Prefix: colors.Normalize(lo.FromPtr(md.Prefix)),
				Suffix: colors.Normalize(lo.FromPtr(md.Suffix)),
			},
		})
		table.Append([]string{
			md.Name,
			md.ParticipantID.String(),
			lo.FromPtr(md.Prefix),
			lo.FromPtr(md.Suffix),
			a.display(preview),
		})
	}
	table.Render()
}
