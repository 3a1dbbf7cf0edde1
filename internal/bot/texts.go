package bot

// All user-facing strings live here as data. HTML parse mode throughout.
const (
	groupHelpText = `🎮 <b>Guess the Character</b>

<b>Rules:</b>
• One player picks a secret character
• Everyone else asks yes/no questions
• The host answers with buttons: Yes/No/Don't know/Partially

<b>Commands:</b>
/startgame — start a new game
/endgame — end the game (host or admin only)
/status — show the game status
/help — show this message`

	privateHelpText = `🎮 <b>Guess the Character</b>

This bot runs a character guessing game in group chats.

<b>How to play:</b>
1. Send /startgame in a group chat
2. You become the host
3. Message me /mygame here in private
4. Then send the character's name
5. Answer the group's questions with the buttons

<b>Commands:</b>
/mygame — begin entering your character`

	gameStartedFmt = "Player %s is now the host. Message me /mygame in private and send the character's name."

	gameInProgressText = "A game is already in progress. End it first with /endgame."

	noGameText = "There is no game in this chat right now."

	endNotAllowedText = "Only the host or an administrator can end the game."

	gameOverFmt = "Game over. The character was: <b>%s</b>"

	gameOverWinnerFmt = "🎉 <b>Game over!</b>\nWinner: %s\nThe character was: <b>%s</b>"

	stoppedBeforeSubjectText = "Game stopped before a character was chosen."

	statusAwaitingFmt = "A game is being set up. Host: %s. Waiting for them to send the character in private."

	statusActiveFmt = "A game is in progress. Host: %s. Ask questions in the chat (end them with a question mark)."

	myGameInGroupText = "⚠️ /mygame only works in a private chat with the bot. Tap the bot's name and send /mygame there."

	noHostedGameText = "There is no game waiting for you to pick a character."

	sendSubjectText = "Send the character's name in your next message."

	emptySubjectText = "The character's name cannot be empty. Try again."

	commitFailedText = "Error: the game is not in a valid state. Run /mygame again."

	subjectSavedFmt = "Character saved: %s"

	subjectChosenText = "The host has chosen a character. Ask questions in the chat (end them with a question mark)."

	notifyFailedFmt = "Character saved, but the group could not be notified: %v"

	questionFmt = "Question from %s: %s"

	answerFmt = "%s\n<b>Answer: %s</b>"

	hostOnlyAnswerText = "Only the host can answer questions."

	guessedEditFmt = "%s\n\n🎉 <b>Correct!</b>\nThe character was: <b>%s</b>"

	guessedAnnounceFmt = "🎉 <b>Game over!</b>\n%s guessed the character: <b>%s</b>"
)
