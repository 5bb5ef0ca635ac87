package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alchemorsel/mealplan/internal/domain/user"
)

// LoadProfile reads a user profile document. Validation is left to the use
// case so that every offending field is reported together.
func LoadProfile(path string) (user.UserProfile, error) {
	var profile user.UserProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parse profile: %w", err)
	}

	return profile, nil
}
