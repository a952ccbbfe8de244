package main

import (
	"context"
	"os"

	"github.com/iwat/caesarfile/internal/cmd"
)

func main() {
	appBuilder := cmd.NewAppBuilder()
	os.Exit(cmd.Execute(context.Background(), cmd.RootCmd(appBuilder), appBuilder))
}
