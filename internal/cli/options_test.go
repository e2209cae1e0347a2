// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseStatsDefaults(t *testing.T) {
	fs := NewStatsFlagSet("fastastats")
	fs.SetOutput(io.Discard)
	opt, err := ParseStats(fs, []string{"in.fasta"})
	if err != nil {
		t.Fatalf("ParseStats: %v", err)
	}
	if opt.Path != "in.fasta" || opt.Output != "text" || opt.Pretty {
		t.Fatalf("unexpected options: %+v", opt)
	}
}

func TestParseStatsStdinDefault(t *testing.T) {
	fs := NewStatsFlagSet("fastastats")
	fs.SetOutput(io.Discard)
	opt, err := ParseStats(fs, nil)
	if err != nil {
		t.Fatalf("ParseStats: %v", err)
	}
	if opt.Path != "-" {
		t.Fatalf("path = %q, want -", opt.Path)
	}
}

func TestParseStatsRejects(t *testing.T) {
	cases := [][]string{
		{"--output", "yaml", "in.fasta"},
		{"--encoding", "no-such-charset", "in.fasta"},
	}
	for _, argv := range cases {
		fs := NewStatsFlagSet("fastastats")
		fs.SetOutput(io.Discard)
		if _, err := ParseStats(fs, argv); err == nil {
			t.Errorf("ParseStats(%v) succeeded, want error", argv)
		}
	}
}

func TestParseStatsHelp(t *testing.T) {
	fs := NewStatsFlagSet("fastastats")
	fs.SetOutput(io.Discard)
	if _, err := ParseStats(fs, []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestParseFilter(t *testing.T) {
	fs := NewFilterFlagSet("fastafilter")
	fs.SetOutput(io.Discard)
	opt, err := ParseFilter(fs, []string{"--min-length", "50", "--type", "DNA", "-o", "out.fasta", "in.fasta"})
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}
	if opt.MinLength != 50 || opt.Type != "DNA" || opt.Out != "out.fasta" || opt.Path != "in.fasta" {
		t.Fatalf("unexpected options: %+v", opt)
	}

	fs = NewFilterFlagSet("fastafilter")
	fs.SetOutput(io.Discard)
	if _, err := ParseFilter(fs, []string{"--type", "PEPTIDE"}); err == nil {
		t.Error("invalid --type accepted")
	}

	fs = NewFilterFlagSet("fastafilter")
	fs.SetOutput(io.Discard)
	if _, err := ParseFilter(fs, []string{"--min-length", "-1"}); err == nil {
		t.Error("negative --min-length accepted")
	}
}

func TestResolveEncoding(t *testing.T) {
	if enc, err := ResolveEncoding(""); err != nil || enc != nil {
		t.Errorf("empty name: %v, %v", enc, err)
	}
	if enc, err := ResolveEncoding("UTF-8"); err != nil || enc != nil {
		t.Errorf("utf-8 should be passthrough: %v, %v", enc, err)
	}
	if enc, err := ResolveEncoding("ISO-8859-1"); err != nil || enc == nil {
		t.Errorf("latin-1 should resolve: %v, %v", enc, err)
	}
	if _, err := ResolveEncoding("no-such-charset"); err == nil {
		t.Error("bogus charset accepted")
	}
}
