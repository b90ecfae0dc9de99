package llm

import "strings"

// BuildAnalysisPrompt composes the fixed document-analysis instruction around
// the extracted text. The structure (classify, explain, key details,
// calculations, insights, non-financial decline) is the whole contract with
// the model; the JSON layout mirrors the Analysis type exactly.
func BuildAnalysisPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Consider yourself as an experienced financial professional with expertise in investments, banking, and financial instruments.\n")
	b.WriteString("Analyze the following document text carefully:\n\n")
	b.WriteString(text)
	b.WriteString("\n\n### Instructions:\n")
	b.WriteString("1. **Determine the Type of Document** - Identify if it is related to investments, banking, taxation, financial agreements, etc.\n")
	b.WriteString("2. **Provide a Full Explanation** - Explain what the document is about and its significance.\n")
	b.WriteString("3. **Extract Key Details** - Identify any critical financial details present in the document.\n")
	b.WriteString("4. **Explain Calculations** - If there are any financial formulas or calculations, perform the calculations and show the results.\n")
	b.WriteString("5. **Insights** - Provide any additional insights or important warnings based on the document content.\n")
	b.WriteString("6. **Restriction** - If the document is NOT related to finance, investments, or banking, set \"document_type\" to \"" + NonFinancialDocumentType + "\" and set \"explanation\" to exactly: 'This document is not financial-related.'\n")
	b.WriteString("7. **Output Format** - Return ONLY a JSON object with these fields and nothing else:\n")
	b.WriteString("{\n")
	b.WriteString("\"document_type\": \"Type of document\",\n")
	b.WriteString("\"explanation\": \"Full explanation of the document\",\n")
	b.WriteString("\"key_details\": [\"Detail 1\", \"Detail 2\"],\n")
	b.WriteString("\"calculations\": [\"Calculations based on the information present.\"],\n")
	b.WriteString("\"insights\": \"Additional useful insights from the document\"\n")
	b.WriteString("}")
	return b.String()
}

// BuildAdvicePrompt wraps a free-form user query in the financial-planner
// instruction. Plain text out; off-topic queries get the fixed decline line.
func BuildAdvicePrompt(query string) string {
	var b strings.Builder
	b.WriteString("You are an experienced financial planner. Your task is to provide clear and comprehensive advice on financial investments.\n")
	b.WriteString("Only answer queries strictly related to finance, investments, or financial planning. If the query is unrelated, respond with:\n")
	b.WriteString("'This query is not related to finance. Please ask questions about financial investments or planning.'\n\n")
	b.WriteString("Query: ")
	b.WriteString(query)
	b.WriteString("\n\nProvide actionable steps, potential risks, and benefits if applicable.\n")
	b.WriteString("IMPORTANT: Format your response in plain text only. Do not use markdown.")
	return b.String()
}
