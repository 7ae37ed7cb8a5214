package domain

type Preferences map[string]string

type Preference struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
