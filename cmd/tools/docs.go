package tools

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Manu343726/tricore/pkg/hw/tricore"
	"github.com/Manu343726/tricore/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() (string, error){
	"tricore.machine_code": tricore.Descriptor.DocString,
	"tricore.instructions": func() (string, error) { return tricore.Descriptor.InstructionsDocumentation(0) },
	"tricore.registers":    func() (string, error) { return tricore.Descriptor.RegistersDocumentation(0), nil },
}

func moduleNames() []string {
	names := utils.Keys(supportedModules)
	sort.Strings(names)
	return names
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show TriCore machine code documentation",
	Long: `Dumps the documentation of the specified module: instruction formats, registers
and the bit layout of every instruction encoding.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(moduleNames(), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: moduleNames(),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := supportedModules[args[0]]()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating documentation: %v\n", err)
			os.Exit(2)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			fmt.Println(doc)
			return
		}

		file, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		fmt.Fprintln(file, doc)
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
