package memory

const (
	DefaultModel    = "gpt-4"
	DefaultMaxSlots = 22

	DefaultPersona = "You are a professional real estate investor and advisor. " +
		"You are very good at analyzing real estate deals and providing advice to investors."

	// SummaryTemperature keeps the compression call close to deterministic.
	SummaryTemperature = 0.2
)

const (
	summarySystemPrompt = "You summarize conversations very concisely."

	summaryInstruction = "Summarize the following conversation briefly, preserving important context and " +
		"critical facts like dollar value, dates, names, places, anything critical should always be " +
		"included in the summary even if it gets somewhat long:"

	answerSystemPrompt = "You have memory from the previous conversation summarized below.\n" +
		"However, you must answer ONLY the latest user question directly,\n" +
		"without restating the summary unless necessary.\n" +
		"Stay concise and relevant. Assume the user remembers the conversation history unless clarification is requested."
)
