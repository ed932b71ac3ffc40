package prompts

// Correction asks a generator to repair a rule that failed verification.
// Arguments: the rule, the diagnostic.
const Correction = `
The generated NetLogo code has an error:
Code: %s
Error: %s

Please fix the code following these rules:
1. Use only fd, rt, or lt commands with numbers or 'random N'
2. Keep expressions simple - avoid complex arithmetic
3. Use positive numbers only
4. Each command must be followed by either:
   - A single number (e.g., "fd 1")
   - random N (e.g., "rt random 30")
   - random-float N (e.g., "lt random-float 45")

Return ONLY the fixed NetLogo code with no explanations.
`
