package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ksum/internal/finder"
	"github.com/roach88/ksum/internal/report"
)

//go:embed schema.cue
var schemaSource string

// Scenario is a single puzzle check.
type Scenario struct {
	// Name identifies the scenario and its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario covers.
	Description string `yaml:"description"`

	// Target is the sum to search for. Defaults to finder.DefaultTarget.
	Target int64 `yaml:"target"`

	// Strategy selects the triple search. Defaults to ascending.
	Strategy string `yaml:"strategy,omitempty"`

	// Input is the report text. Exactly one of Input and InputFile is set;
	// an empty Input is an empty report.
	Input *string `yaml:"input,omitempty"`

	// InputFile is a report file, relative to the scenario file.
	InputFile string `yaml:"input_file,omitempty"`

	// Expect holds the expected outcomes.
	Expect Expect `yaml:"expect"`

	dir string
}

// Expect lists the expected outcome per search. A nil field is not checked.
type Expect struct {
	Pair   *Expectation `yaml:"pair,omitempty"`
	Triple *Expectation `yaml:"triple,omitempty"`
}

// Expectation is either a product or "none".
type Expectation struct {
	None    bool
	Product int64
}

// UnmarshalYAML accepts an integer product or the string "none".
func (e *Expectation) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && n.Value == "none" {
		*e = Expectation{None: true}
		return nil
	}
	var product int64
	if err := n.Decode(&product); err != nil {
		return fmt.Errorf("line %d: expectation must be an integer or \"none\"", n.Line)
	}
	*e = Expectation{Product: product}
	return nil
}

func (e Expectation) String() string {
	if e.None {
		return "none"
	}
	return fmt.Sprintf("%d", e.Product)
}

// ScenarioError reports a scenario file that does not match the schema or
// is otherwise unusable.
type ScenarioError struct {
	Path    string
	Message string
	Pos     token.Pos
}

func (e *ScenarioError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// LoadScenario reads, validates and decodes a scenario file.
// InputFile is resolved relative to the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(path, data)
}

// ParseScenario validates and decodes scenario YAML. The filename is used
// for error positions and to resolve InputFile.
func ParseScenario(filename string, data []byte) (*Scenario, error) {
	if err := validateSchema(filename, data); err != nil {
		return nil, err
	}

	scenario := Scenario{Target: finder.DefaultTarget}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, &ScenarioError{Path: filename, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	scenario.dir = filepath.Dir(filename)

	if err := validateScenario(&scenario); err != nil {
		return nil, &ScenarioError{Path: filename, Message: err.Error()}
	}
	return &scenario, nil
}

// validateSchema unifies the YAML document with #Scenario.
func validateSchema(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return &ScenarioError{Path: filename, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return formatCUEError(filename, err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(filename, err)
	}
	return nil
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(filename string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &ScenarioError{Path: filename, Message: err.Error()}
	}

	first := errs[0]
	format, args := first.Msg()
	msg := fmt.Sprintf(format, args...)
	if path := strings.Join(first.Path(), "."); path != "" {
		msg = path + ": " + msg
	}
	se := &ScenarioError{Path: filename, Message: msg}
	for _, pos := range cueerrors.Positions(first) {
		if pos.Filename() == filename {
			se.Pos = pos
			break
		}
	}
	return se
}

// validateScenario checks the constraints the schema does not express.
func validateScenario(s *Scenario) error {
	if s.Input == nil && s.InputFile == "" {
		return fmt.Errorf("one of input or input_file is required")
	}
	if s.Input != nil && s.InputFile != "" {
		return fmt.Errorf("input and input_file are mutually exclusive")
	}
	if s.Expect.Pair == nil && s.Expect.Triple == nil {
		return fmt.Errorf("expect must specify pair, triple or both")
	}
	if _, err := finder.ParseStrategy(s.Strategy); err != nil {
		return err
	}
	return nil
}

// Report builds the scenario's report.
func (s *Scenario) Report() (*report.Report, error) {
	if s.Input != nil {
		return report.Parse(*s.Input)
	}
	path := s.InputFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	return report.Load(path)
}
