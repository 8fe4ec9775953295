package main

import "github.com/agent-platform/tools/yearprogress/cmd"

func main() {
	cmd.Execute()
}
