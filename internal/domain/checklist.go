package domain

import "encoding/json"

// ChecklistItem is one packing-list row. Old saved documents stored bare
// strings; UnmarshalJSON upgrades those to the structured shape so callers
// never see the legacy form.
type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// UnmarshalJSON accepts either the structured form {"text":...,"done":...}
// or a legacy bare string, which becomes an unchecked item.
func (c *ChecklistItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Text = s
		c.Done = false
		return nil
	}

	type alias ChecklistItem // drop methods to avoid recursion
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = ChecklistItem(a)
	return nil
}
