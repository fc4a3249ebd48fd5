package main

import "github.com/jmehdipour/sms-relay/cmd"

func main() {
	cmd.Execute()
}
