package game

// whisperTexts is the fixed pool of payloads carried by text bullets.
var whisperTexts = []string{
	`I had a grandmother who had been diagnosed with serious paranoid schizophrenia, who everyone said was mentally weak.`,
	`my father said any emotional weakness would bring on symptoms not unlike those dramatically thwarted in The Exorcist.`,
	`'Ghosts use any opportunity to possess you, okay? Don’t be weak, or it’s game over for you.'`,
	`The more vulnerable emotions, such as sadness, fear, and even affection, were seen as threats”`,
	`In our family, crying was considered contagious; it made you extremely vulnerable to the Woo-Woo ghosts`,
	`your mom is just like Poh-Poh, nervous about everything`,
	`we had to be emotionally strong if we didn’t want the ghosts to take our parents away`,
	`'People who cry become Woo-Woo.'`,
	`'These kinds of doctors don’t believe in ghosts'`,
}
