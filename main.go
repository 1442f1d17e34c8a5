package main

import "github.com/ValentinKolb/prefsync/cmd"

func main() {
	cmd.Execute()
}
