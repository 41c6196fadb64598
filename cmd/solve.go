/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carlonluca/isogeometric-analysis/InputParameters"
	"github.com/carlonluca/isogeometric-analysis/solver"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

const exampleSystemFile = `
########################################
Title: "Two by two"
A:
  - [1, 1]
  - [-3, 1]
B: [6, 2]
Pivot: false # Use partial pivoting
########################################
`

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a dense linear system by LU decomposition",
	Long: `
Reads A and b from a YAML file and solves A x = b, printing the solution, the
residual and the condition number of A.

isogeo solve -I system.yaml --pivot`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			sp        = &InputParameters.SystemParameters{}
			inFile, _ = cmd.Flags().GetString("inputFile")
			decimals  = viper.GetInt("decimals")
			out       = cmd.OutOrStdout()
			data      []byte
			A         utils.Matrix
			b, x      utils.ColVector
		)
		if inFile == "" {
			return fmt.Errorf("must supply a system file (-I, --inputFile), example file:%s", exampleSystemFile)
		}
		if data, err = os.ReadFile(inFile); err != nil {
			return
		}
		if err = sp.Parse(data); err != nil {
			return fmt.Errorf("parsing %s: %w", inFile, err)
		}
		if cmd.Flags().Changed("pivot") {
			sp.Pivot, _ = cmd.Flags().GetBool("pivot")
		}
		if viper.GetBool("verbose") {
			sp.Print(out)
		}
		if A, b, err = sp.Build(); err != nil {
			return
		}
		if sp.Pivot {
			x, err = solver.LinSolvePivoted(A, b)
		} else {
			x, err = solver.LinSolve(A, b)
		}
		if err != nil {
			return
		}
		if !utils.IsFinite(x) {
			return fmt.Errorf("solution %v overflowed, try --pivot: %w", x.ToSlice(), utils.ErrSingularMatrix)
		}
		writeValues(out, "x", x.ToSlice(), decimals)
		fmt.Fprintf(out, "Residual: %.3e\n", solver.Residual(A, x, b))
		fmt.Fprintf(out, "Condition number: %.3e\n", A.ConditionNumber())
		return
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("inputFile", "I", "", "YAML file with the matrix A and right hand side B")
	SolveCmd.Flags().Bool("pivot", false, "use partial pivoting, overrides the file setting")
}
