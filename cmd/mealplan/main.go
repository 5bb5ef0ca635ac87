// Command mealplan generates a week of meals for a user profile from an
// ingredient catalog or a recipe pool
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
