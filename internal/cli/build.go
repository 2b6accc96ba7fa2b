package cli

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/potlib/potrec/internal/builder"
	"github.com/potlib/potrec/internal/record"
)

// buildOptions holds the flags of the build command.
type buildOptions struct {
	variant string
	style   string
	out     string

	id       string
	key      string
	potID    string
	potKey   string
	status   string
	comments string
	dois     []string

	units      string
	atomStyle  string
	elements   []string
	symbols    []string
	masses     []float64
	charges    []float64
	allSymbols bool

	styleTerms []string

	coeffs       []string // pair: one spec per interaction
	paramFiles   []string // paramfile: single file; eam: one per symbol
	prependTerms []string
	appendTerms  []string
}

// NewBuildCommand creates the build command.
func NewBuildCommand(opts *RootOptions) *cobra.Command {
	bo := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a potential record from parameters",
		Long: `Build a potential record and print (or write) its document form.

Three builder variants cover the pair_coeff line layouts:

  pair       coefficients given directly per symbol pair (--coeff)
  paramfile  a single parameter file covering all symbols (--paramfile)
  eam        one funcfl parameter file per symbol (--paramfile, repeated)

A --coeff spec is a space-separated term list, optionally prefixed by the
two interaction symbols:

  --coeff "0.5 2.62"           universal interaction
  --coeff "Ni Ni 0.5 2.62"     one symbol pair

Numeric terms become coefficients, anything else a literal option token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, bo)
		},
	}

	cmd.Flags().StringVar(&bo.variant, "builder", "pair", "builder variant (pair|paramfile|eam)")
	cmd.Flags().StringVar(&bo.style, "style", "", "pair style (implied for eam)")
	cmd.Flags().StringVarP(&bo.out, "out", "o", "", "write the document to a file instead of stdout")

	cmd.Flags().StringVar(&bo.id, "id", "", "record id")
	cmd.Flags().StringVar(&bo.key, "key", "", "record key (default: fresh UUID)")
	cmd.Flags().StringVar(&bo.potID, "potid", "", "parent potential id")
	cmd.Flags().StringVar(&bo.potKey, "potkey", "", "parent potential key")
	cmd.Flags().StringVar(&bo.status, "status", "", "record status (active|superseded|retracted)")
	cmd.Flags().StringVar(&bo.comments, "comments", "", "free-form comments")
	cmd.Flags().StringSliceVar(&bo.dois, "doi", nil, "DOI of the source publication (repeatable)")

	cmd.Flags().StringVar(&bo.units, "units", "", "LAMMPS units setting (default metal)")
	cmd.Flags().StringVar(&bo.atomStyle, "atom-style", "", "LAMMPS atom_style setting (default atomic)")
	cmd.Flags().StringSliceVar(&bo.elements, "element", nil, "element symbol (repeatable)")
	cmd.Flags().StringSliceVar(&bo.symbols, "symbol", nil, "model symbol (repeatable, defaults to elements)")
	cmd.Flags().Float64SliceVar(&bo.masses, "mass", nil, "per-atom mass override (repeatable)")
	cmd.Flags().Float64SliceVar(&bo.charges, "charge", nil, "per-atom fixed charge (repeatable)")
	cmd.Flags().BoolVar(&bo.allSymbols, "allsymbols", false, "force the full symbol list onto every coefficient line")

	cmd.Flags().StringSliceVar(&bo.styleTerms, "style-term", nil, "extra pair_style token, e.g. a cutoff (repeatable)")

	cmd.Flags().StringArrayVar(&bo.coeffs, "coeff", nil, "interaction spec for the pair builder (repeatable)")
	cmd.Flags().StringSliceVar(&bo.paramFiles, "paramfile", nil, "parameter file name (repeatable for eam)")
	cmd.Flags().StringSliceVar(&bo.prependTerms, "prepend-term", nil, "term before the parameter file token (paramfile builder)")
	cmd.Flags().StringSliceVar(&bo.appendTerms, "append-term", nil, "term after the symbol placeholder (paramfile builder)")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *RootOptions, bo *buildOptions) error {
	rec, err := buildRecord(bo)
	if err != nil {
		return WrapExitError(ExitCommandError, "build record", err)
	}

	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Built %s record with %d atoms and %d pair_coeff lines\n",
			rec.PairStyle, len(rec.Atoms), len(rec.PairCoeffs))
	}

	if bo.out != "" {
		f, err := os.Create(bo.out)
		if err != nil {
			return WrapExitError(ExitCommandError, "create output file", err)
		}
		defer f.Close()
		if err := writeRecord(f, rec, opts.Format); err != nil {
			return WrapExitError(ExitCommandError, "write record", err)
		}
		if opts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Record written to %s\n", bo.out)
		}
		return nil
	}

	if err := writeRecord(cmd.OutOrStdout(), rec, opts.Format); err != nil {
		return WrapExitError(ExitCommandError, "write record", err)
	}
	return nil
}

func buildRecord(bo *buildOptions) (*record.Record, error) {
	base := builder.Options{
		ID:         bo.id,
		Key:        bo.key,
		PotID:      bo.potID,
		PotKey:     bo.potKey,
		Status:     bo.status,
		Units:      bo.units,
		AtomStyle:  bo.atomStyle,
		Comments:   bo.comments,
		Dois:       bo.dois,
		Elements:   bo.elements,
		Symbols:    bo.symbols,
		Masses:     bo.masses,
		Charges:    bo.charges,
		AllSymbols: bo.allSymbols,
	}
	for _, t := range bo.styleTerms {
		base.PairStyleTerms = append(base.PairStyleTerms, parseTerm(t))
	}

	switch bo.variant {
	case "pair":
		b, err := builder.NewPair(bo.style, base)
		if err != nil {
			return nil, err
		}
		for _, spec := range bo.coeffs {
			symbols, terms, err := parseCoeffSpec(spec, append(bo.symbols, bo.elements...))
			if err != nil {
				return nil, err
			}
			if err := b.SetInteraction(symbols, terms); err != nil {
				return nil, err
			}
		}
		return b.Potential()

	case "paramfile":
		if len(bo.paramFiles) > 1 {
			return nil, fmt.Errorf("paramfile builder takes a single --paramfile")
		}
		var options []builder.ParamFileOption
		if len(bo.paramFiles) == 1 {
			options = append(options, builder.WithParamFile(bo.paramFiles[0]))
		}
		if len(bo.prependTerms) > 0 {
			options = append(options, builder.WithPrependTerms(parseTerms(bo.prependTerms)...))
		}
		if len(bo.appendTerms) > 0 {
			options = append(options, builder.WithAppendTerms(parseTerms(bo.appendTerms)...))
		}
		b, err := builder.NewParamFile(bo.style, base, options...)
		if err != nil {
			return nil, err
		}
		return b.Potential()

	case "eam":
		if bo.style != "" && bo.style != "eam" {
			return nil, fmt.Errorf("eam builder only builds pair style eam")
		}
		b, err := builder.NewEAM(base, bo.paramFiles...)
		if err != nil {
			return nil, err
		}
		return b.Potential()

	default:
		return nil, fmt.Errorf("unknown builder %q: must be pair, paramfile, or eam", bo.variant)
	}
}

// parseCoeffSpec splits an interaction spec into its optional symbol pair
// and terms. The first two tokens are taken as symbols when both name
// declared particle models.
func parseCoeffSpec(spec string, known []string) ([]string, []record.Term, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("empty --coeff spec")
	}

	var symbols []string
	if len(fields) >= 2 && slices.Contains(known, fields[0]) && slices.Contains(known, fields[1]) {
		symbols = fields[:2]
		fields = fields[2:]
	}
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("--coeff %q has symbols but no terms", spec)
	}
	return symbols, parseTerms(fields), nil
}

func parseTerms(tokens []string) []record.Term {
	terms := make([]record.Term, len(tokens))
	for i, tok := range tokens {
		terms[i] = parseTerm(tok)
	}
	return terms
}

// parseTerm turns a token into a numeric coefficient when it parses as a
// number, and a literal option token otherwise.
func parseTerm(tok string) record.Term {
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return record.Param(v)
	}
	return record.Option(tok)
}
