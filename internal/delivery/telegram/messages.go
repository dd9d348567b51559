// messages.go contains message templates for the Telegram delivery layer.

package telegram

const (
	msgWelcome = "Bonjour! 👋 欢迎来到 <b>French Master</b>\n\n" +
		"专为中文学习者打造的法语训练营：\n" +
		"📚 /words — 浏览全套词汇与发音\n" +
		"🎯 /quiz — 闯关测试（翻译、音标、组句）\n" +
		"ℹ️ /help — 帮助"

	msgHelp = "可用命令：\n\n" +
		"/words — 学习模式：按类别浏览词汇与句型、音标与谐音提示\n" +
		"/quiz — 闯关测试：词义互译、音标辨析、连词成句\n" +
		"/start — 返回主页\n\n" +
		"测试中点击题目下方按钮作答，答完一题后点击「下一题」。"

	msgChooseMode = "<b>选择测试模式</b>\n\nChoose your challenge"

	msgNoActiveQuiz   = "当前没有进行中的测试。发送 /quiz 开始新的挑战。"
	msgQuizAborted    = "已退出测试。发送 /quiz 重新开始。"
	msgTextHint       = "发送 /quiz 开始测试，或 /words 浏览词汇。"
	msgUnknownCommand = "未知命令。可用命令：\n/words — 浏览词汇\n/quiz — 开始测试\n/help — 帮助"

	msgEmptyAssembly = "请先点击下方单词组句"
	msgAudioQueued   = "🔊 播放发音"
	msgAlreadyDone   = "本题已作答"
)
