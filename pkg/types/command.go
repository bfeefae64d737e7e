package types

import "fmt"

// FileReference is a relative path naming one input file, as read from a
// manifest line or found while walking a directory.
type FileReference string

// PathPair is the source and target of one transformation.
type PathPair struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// CommandLine is one invocation of the XSLT processor. It is built,
// emitted and discarded; nothing keeps it.
type CommandLine struct {
	PathPair `yaml:",inline"`

	Tool          string `json:"tool" yaml:"tool"`
	TransformRule string `json:"transform_rule" yaml:"transform_rule"`
}

// String renders the command as "<tool> -s:<source> -xsl:<rule> -o:<target>".
func (c CommandLine) String() string {
	return fmt.Sprintf("%s -s:%s -xsl:%s -o:%s", c.Tool, c.Source, c.TransformRule, c.Target)
}

// Summary counts the outcome of one generation pass.
type Summary struct {
	// Emitted is the number of commands written.
	Emitted int
	// Skipped counts blank manifest lines or non-matching files.
	Skipped int
}

// Total returns the number of entries examined.
func (s Summary) Total() int {
	return s.Emitted + s.Skipped
}
