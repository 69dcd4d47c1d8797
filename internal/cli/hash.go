package cli

import (
	"fmt"
	"strings"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typex/digest"
)

// hashEntry is one line of hash output.
type hashEntry struct {
	Value  string `json:"value" yaml:"value"`
	Digest string `json:"digest" yaml:"digest"`
}

func (a *app) hashCmd() *cobra.Command {
	var (
		algorithm string
		list      bool
		verify    string
	)
	cmd := &cobra.Command{
		Use:   "hash [strings...]",
		Short: "Print hex digests of strings or stdin",
		Long: `Hashes each argument, or all of stdin when there are none. The default
algorithm is md5 unless default_algorithm is set in the config.

Examples:
  typex hash hello world
  typex hash --algorithm sha3-256 hello
  cat file.bin | typex hash --algorithm blake2b
  typex hash hello --verify 5d41402abc4b2a76b9719d911017c592`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := digest.NewDefaultManager()
			if list {
				return a.emit(m.Names())
			}

			name := a.cfg.Algorithm()
			if cmd.Flags().Changed("algorithm") {
				name = digest.ParseAlgorithm(algorithm)
			}
			h, err := m.Hasher(name)
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(m.Names(), ", "))
			}
			a.logger.Debug("hashing", "algorithm", h.Algorithm(), "args", len(args))

			if verify != "" {
				if len(args) != 1 {
					return fmt.Errorf("--verify needs exactly one string")
				}
				ok, err := h.Verify(args[0], verify)
				if err != nil {
					return err
				}
				return a.emit(ok)
			}

			if len(args) == 0 {
				sum, err := h.Reader(a.stdin)
				if err != nil {
					return err
				}
				return a.emit(sum)
			}

			out := make([]hashEntry, 0, len(args))
			i := 0
			for sum := range h.Each(seq.FromSlice(args)) {
				out = append(out, hashEntry{Value: args[i], Digest: sum})
				i++
			}
			return a.emit(out)
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Digest algorithm (md5, sha1, sha256, sha512, sha3-256, blake2b-256)")
	cmd.Flags().BoolVar(&list, "list", false, "List the available algorithms")
	cmd.Flags().StringVar(&verify, "verify", "", "Compare the digest of the single argument with this hex digest")
	return cmd
}
