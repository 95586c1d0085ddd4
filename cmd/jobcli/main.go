package main

import "github.com/opencareer/jobcli/cmd/jobcli/cmd"

func main() {
	cmd.Execute()
}
