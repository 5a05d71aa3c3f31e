package scripted

// Responder - детерминированный симулятор собеседника в инбоксе админа.
// Реплики фиксированы для каждой роли; следующий ответ выбирается по
// числу уже отправленных пользователем сообщений, по модулю длины
// сценария. Это дает воспроизводимую переписку без настоящего чата.
type Responder struct{}

func NewResponder() *Responder {
	return &Responder{}
}

type roleScript struct {
	initialQuery string
	replies      []string
}

var roleScripts = map[string]roleScript{
	"BUYER": {
		initialQuery: "Hi, I'm looking for a 3-bedroom house in the Bellandur area. Any suggestions?",
		replies: []string{
			"Yes, please! Can you send me some options?",
			"What is the price range near that area?",
			"35k-55k. We can negotiate after the property selection",
			"Nice, any with a garage?",
			"Cool, how's the neighborhood?",
		},
	},
	"SELLER": {
		initialQuery: "Hi, how do I list my property on your platform?",
		replies: []string{
			"Thanks! Could you guide me through the form?",
			"Perfect, how long does approval take?",
			"Got it, what's the listing fee?",
			"Alright, can I upload photos?",
			"Good, how do I track inquiries?",
		},
	},
	"AGENT": {
		initialQuery: "Can you provide me with the latest market trends for my clients?",
		replies: []string{
			"That's helpful! Can I get a detailed report?",
			"Awesome, can you email it to me?",
			"Thanks, what about last quarter?",
			"Nice, any predictions for next month?",
			"Great, how do I share this with clients?",
		},
	},
	"ADMIN": {
		initialQuery: "I need to update the system settings. Where do I start?",
		replies: []string{
			"Got it! How do I adjust user Role",
			"Thanks, what about adding new users?",
			"Cool, can I change the theme?",
			"Nice, how do I backup data?",
			"Good, What about future meetings?",
		},
	},
}

// Сценарий для ролей, которых нет в таблице.
var defaultScript = roleScript{
	initialQuery: "Hi, I have a general question!",
	replies: []string{
		"Cool, can you tell me more?",
		"Thanks, anything else I should know?",
		"Great, what's next?",
	},
}

func scriptFor(role string) roleScript {
	if script, ok := roleScripts[role]; ok {
		return script
	}
	return defaultScript
}

func (r *Responder) InitialQuery(role string) string {
	return scriptFor(role).initialQuery
}

func (r *Responder) NextReply(role string, userReplyCount int) string {
	script := scriptFor(role)
	return script.replies[userReplyCount%len(script.replies)]
}
