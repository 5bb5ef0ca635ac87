package nutrition

// NutritionalInfo holds aggregated nutrition. Calories are kcal, the rest grams.
type NutritionalInfo struct {
	Calories      float64 `json:"calories" yaml:"calories"`
	Protein       float64 `json:"protein" yaml:"protein"`
	Carbohydrates float64 `json:"carbohydrates" yaml:"carbohydrates"`
	Fat           float64 `json:"fat" yaml:"fat"`
	Fiber         float64 `json:"fiber" yaml:"fiber"`
}

// Add returns the component-wise sum
func (n NutritionalInfo) Add(o NutritionalInfo) NutritionalInfo {
	return NutritionalInfo{
		Calories:      n.Calories + o.Calories,
		Protein:       n.Protein + o.Protein,
		Carbohydrates: n.Carbohydrates + o.Carbohydrates,
		Fat:           n.Fat + o.Fat,
		Fiber:         n.Fiber + o.Fiber,
	}
}

// Scale multiplies every component by factor
func (n NutritionalInfo) Scale(factor float64) NutritionalInfo {
	return NutritionalInfo{
		Calories:      n.Calories * factor,
		Protein:       n.Protein * factor,
		Carbohydrates: n.Carbohydrates * factor,
		Fat:           n.Fat * factor,
		Fiber:         n.Fiber * factor,
	}
}

// Sum aggregates a list of nutritional values
func Sum(items ...NutritionalInfo) NutritionalInfo {
	var total NutritionalInfo
	for _, item := range items {
		total = total.Add(item)
	}
	return total
}
