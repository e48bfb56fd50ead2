package classifier

// systemPrompt pins the model's output contract: a bare JSON object with the
// two closed label sets. Downstream normalization still guards the vocabulary
// even when the model ignores this.
const systemPrompt = `You classify support tickets.

Return a STRICT JSON object with exactly two fields:
- "priority": one of ["low","medium","high"]
- "department": one of ["account","hardware","network","software","other"]

Guidance:
- If login/password/access → department = "account"
- If connectivity/WiFi/VPN/speed → "network"
- If device/peripherals/disk/monitor/keyboard/printer → "hardware"
- If app/OS/install/crash/error message → "software"
- Else → "other"

Priority heuristics:
- "high": outages, security risk, cannot work, data loss
- "medium": significantly blocked but has workaround
- "low": routine request or minor inconvenience

Output: ONLY the JSON object. No extra text.
`
