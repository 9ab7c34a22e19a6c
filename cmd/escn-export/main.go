// escn-export converts a scene outline (markdown or org) into a Godot escn
// scene file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sceneforge/escn-go-sdk/escn"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		outPath    string
		sceneName  string
	)
	cmd := &cobra.Command{
		Use:   "escn-export [flags] outline-file",
		Short: "Export a scene outline to a Godot escn scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], configPath, outPath, sceneName)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "export settings YAML")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output .escn path (default: outline name with .escn)")
	cmd.Flags().StringVar(&sceneName, "name", "", "root node name (default: outline file stem)")
	return cmd
}

func runExport(inPath, configPath, outPath, sceneName string) error {
	body, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	format := escn.OutlineMarkdown
	if ext := strings.ToLower(filepath.Ext(inPath)); ext == ".org" {
		format = escn.OutlineOrg
	}
	entities, err := escn.ParseOutline(string(body), format)
	if err != nil {
		return fmt.Errorf("parse outline %s: %w", inPath, err)
	}

	settings := &escn.ExportSettings{}
	if configPath != "" {
		settings, err = escn.LoadSettings(configPath)
		if err != nil {
			return err
		}
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".escn"
	}
	if settings.Path == "" {
		settings.Path = outPath
	}
	if sceneName == "" {
		sceneName = strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	}

	doc := escn.NewDocument()
	escn.ExportScene(doc, settings, sceneName, entities)
	if err := doc.DumpFile(outPath); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
