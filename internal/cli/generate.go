package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/docmaker/internal/logging/logfields"
	"github.com/example/docmaker/internal/models"
	"github.com/example/docmaker/internal/schema"
	"github.com/example/docmaker/internal/wire"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate PHP classes",
	}
	cmd.AddCommand(newGenerateDocumentCmd(a, "document", false))
	return cmd
}

func newGenerateDocumentCmd(a *app, use string, hidden bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:    use,
		Short:  "Generate a PHP class for a MongoDB document",
		Hidden: hidden,
		Long: `Generate a PHP class for a MongoDB document.

Without --schema the collection name, the embedding flag and the fields are
asked for interactively; enter an empty field name to stop adding fields.

The class is written to <output-dir>/<ClassName>.php, replacing any existing
file. Move it to src/Document of your Symfony project afterwards.

Schema file format:
  collection: user
  embedded: false
  fields:
    - {name: firstname, type: string}
    - {name: address, embed_one: address}
    - {name: tags, embed_many: tag}

Examples:
  docmaker generate document
  docmaker generate document --schema user.yaml --output-dir src/Document
  docmaker generate document --schema user.yaml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, _ := cmd.Flags().GetString("schema")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return a.generateDocument(cmd, schemaPath, dryRun)
		},
	}

	cmd.Flags().String("schema", "", "Read the collection description from a YAML file instead of prompting")
	cmd.Flags().Bool("dry-run", false, "Print the generated class instead of writing it")

	return cmd
}

func (a *app) generateDocument(cmd *cobra.Command, schemaPath string, dryRun bool) error {
	var (
		collection models.Collection
		fields     *models.FieldList
		err        error
	)
	if schemaPath != "" {
		a.log.WithField(logfields.Schema, schemaPath).Debug("Loading schema file")
		collection, fields, err = schema.Load(schemaPath, a.cfg.StrictTypes)
	} else {
		collection, fields, err = NewPrompter(a.in, a.out, a.cfg.StrictTypes).Collect()
	}
	if err != nil {
		return classify(err, ExitFailure)
	}

	gen, err := wire.Generator(a.cfg, a.log)
	if err != nil {
		return err
	}

	if dryRun {
		content, err := gen.Render(collection, fields)
		if err != nil {
			return classify(err, ExitGenerationFailed)
		}
		fmt.Fprintf(a.errOut, "(dry-run mode - would write %s)\n", gen.OutputPath(collection))
		_, err = a.out.Write(content)
		return err
	}

	path, err := gen.Generate(cmd.Context(), collection, fields)
	if err != nil {
		return classify(err, ExitGenerationFailed)
	}

	success := color.New(color.FgGreen)
	success.Fprintf(a.out, "PHP class successfully generated here: %s.\n", path)
	success.Fprintf(a.out, "Now move this file to: ${SymfonyProjectDir}/src/Document.\n")
	return nil
}
