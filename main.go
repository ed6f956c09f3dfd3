package main

import "github.com/krivenkov/pdfpeek/cmd"

func main() {
	cmd.Execute()
}
