package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	brainfuck "github.com/ktfth/brainfuck-go"
	"github.com/ktfth/brainfuck-go/dis"
)

var disCmd = &cobra.Command{
	Use:   "dis [file]",
	Short: "Disassemble a compiled program",
	Long:  "Prints the instruction listing with resolved jump targets.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		source, filename, err := readSource(args, viper.GetString("code"), os.Stdin, stdinIsTerminal())
		if err != nil {
			return fatal(err)
		}
		code, err := brainfuck.Compile(source, brainfuck.WithFilename(filename))
		if err != nil {
			return fatal(err)
		}
		return dis.Disassemble(code, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(disCmd)
}
