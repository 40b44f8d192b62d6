package content

import "fmt"

// SystemPrompt is sent as the system message of every lookup
const SystemPrompt = "You are a helpful assistant."

// BuildPrompt returns the user prompt asking for a definition and two
// example sentences in the fixed four-line layout
func BuildPrompt(word string) string {
	return fmt.Sprintf(`Provide the definition and 2 example sentences for the following word: %s.

**Example Format (word: ocean):**
Ocean
A vast body of saltwater that covers a large part of the Earth's surface.
The ocean is home to a diverse range of marine life, from tiny plankton to massive whales.
The sound of waves crashing against the shore is a soothing reminder of the power and beauty of the ocean.
`, word)
}
