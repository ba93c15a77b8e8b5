package analyzer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"omnilint/internal/errors"
	"omnilint/internal/lang"
	"omnilint/internal/toolrun"
)

// registryFile mirrors the YAML layout of a user tool registry:
//
//	tools:
//	  - language: python
//	    name: pylint
//	    binary: pylint
//	    args: ["--output-format=text", "{path}"]
//	    parser: pattern
//	    pattern: '^(?P<file>.+?):(?P<line>\d+):(?P<col>\d+): (?P<code>\S+): (?P<msg>.+)$'
type registryFile struct {
	Tools []registryFileTool `yaml:"tools"`
}

type registryFileTool struct {
	Language         string `yaml:"language"`
	toolrun.ToolSpec `yaml:",inline"`
}

var knownParsers = map[string]struct{}{
	toolrun.ParserPattern:      {},
	toolrun.ParserRuff:         {},
	toolrun.ParserBandit:       {},
	toolrun.ParserESLint:       {},
	toolrun.ParserGolangciLint: {},
	toolrun.ParserCargo:        {},
}

// LoadRegistryFile merges the tool entries of a YAML registry file into
// registry. Each entry extends the named language's pipeline.
func LoadRegistryFile(path string, registry *Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewOperationError("read tool registry", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.New(errors.RegistryInvalid, err.Error())
	}

	for i, tool := range file.Tools {
		if err := validateRegistryTool(tool); err != nil {
			return errors.New(errors.RegistryInvalid,
				fmt.Sprintf("tool %d (%s): %v", i, tool.Name, err))
		}
		registry.AddTool(lang.Language(tool.Language), tool.ToolSpec)
	}
	return nil
}

func validateRegistryTool(tool registryFileTool) error {
	if tool.Language == "" {
		return fmt.Errorf("language is required")
	}
	if tool.Name == "" || tool.Binary == "" {
		return fmt.Errorf("name and binary are required")
	}
	if _, ok := knownParsers[tool.Parser]; !ok {
		return fmt.Errorf("unknown parser %q", tool.Parser)
	}
	if tool.Parser == toolrun.ParserPattern && tool.Pattern == "" {
		return fmt.Errorf("parser %q requires a pattern", tool.Parser)
	}
	return nil
}
