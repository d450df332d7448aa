package main

import "github.com/example/reserva-rapida/cmd"

func main() {
	cmd.Execute()
}
