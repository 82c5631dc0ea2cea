// Package main provides the validador CLI application.
// validador reconciles payroll absence extracts and attaches store data.
package main

import "github.com/Jeysshonb/Validador-nomina/cmd"

func main() {
	cmd.Execute()
}
