package main

import "github.com/TheStaticMage/firebot-disabled-effect-finder/cmd"

func main() {
	cmd.Execute()
}
