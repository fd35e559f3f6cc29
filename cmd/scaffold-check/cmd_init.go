package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ai-first-sdlc/scaffold-check/internal/templates"
)

var (
	initProfile       string
	initAssumeYes     bool
	initVersion       string
	initTemplate      string
	initListTemplates bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the missing scaffold",
	Long: `Create the scaffold paths the selected profile requires.

Existing files are never overwritten. Directories receive a .gitkeep so they
can be committed while empty. With --template, a framework test for the given
language is installed as well.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initProfile, "profile", "p", "", "Check profile: minimal or standard (default: from config)")
	initCmd.Flags().BoolVarP(&initAssumeYes, "yes", "y", false, "Create every missing path without asking")
	initCmd.Flags().StringVar(&initVersion, "version", "", "Initial VERSION content (default: prompt, 0.1.0)")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "", "Install the framework test for a language")
	initCmd.Flags().BoolVar(&initListTemplates, "list-templates", false, "List available framework test templates")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if initListTemplates {
		for _, lang := range templates.Languages() {
			tmpl, err := templates.Lookup(lang)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %s\n", tmpl.Language, tmpl.Target)
		}
		return nil
	}

	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	opts := ctx.InitOptions(initProfile, initVersion, initTemplate, initAssumeYes)
	return ctx.RunInit(opts)
}
