package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-lyml"
	"github.com/KimNorgaard/go-lyml/token"
	"github.com/KimNorgaard/go-lyml/value"
)

// tokenInfo is the JSON and YAML view of a token.
type tokenInfo struct {
	Line    int         `json:"line" yaml:"line"`
	Indent  int         `json:"indent" yaml:"indent"`
	Prefix  string      `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Name    string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value   value.Value `json:"value" yaml:"value"`
	Comment string      `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// tokensCommand prints the token stream of a file.
type tokensCommand struct {
	cfg    *globalConfig
	file   string
	output string
}

// Register the tokens command and its flags with the kingpin application.
func (c *tokensCommand) Register(app *kingpin.Application, cfg *globalConfig) {
	c.cfg = cfg
	cmd := app.Command("tokens", "Print the tokens of an LYML file.").Action(c.run)
	cmd.Arg("file", "The LYML file to read.").Required().StringVar(&c.file)
	cmd.Flag("output", "Output format.").Short('o').Default("text").EnumVar(&c.output, "text", "json", "yaml")
}

func (c *tokensCommand) run(*kingpin.ParseContext) error {
	tokens, err := lyml.ParseFile(c.file, c.cfg.options()...)
	if err != nil {
		return err
	}
	return writeTokens(c.cfg.stdout, tokens, c.output)
}

func writeTokens(w io.Writer, tokens []token.Token, output string) error {
	switch output {
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(tokenInfos(tokens), "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode tokens as JSON")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tokenInfos(tokens)); err != nil {
			return errors.Wrap(err, "encode tokens as YAML")
		}
		return enc.Close()
	default:
		for i, t := range tokens {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", i+1, t); err != nil {
				return err
			}
		}
		return nil
	}
}

func tokenInfos(tokens []token.Token) []tokenInfo {
	infos := make([]tokenInfo, 0, len(tokens))
	for i, t := range tokens {
		infos = append(infos, tokenInfo{
			Line:    i + 1,
			Indent:  t.Indent(),
			Prefix:  t.Prefix(),
			Name:    t.Name(),
			Value:   t.Value(),
			Comment: t.Comment(),
		})
	}
	return infos
}
