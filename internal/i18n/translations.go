package i18n

import (
	"strconv"
	"strings"
)

// GradeText is the localized label and flavour text of one grade band.
type GradeText struct {
	Name      string
	General   string
	Overwatch string
	LoL       string
}

// Translation holds every user-facing string for one language. Grades are
// ordered like analytics.Grades.
type Translation struct {
	Title           string
	Introduction    string
	StatusIdle      string
	StatusWaiting   string
	StatusPlaying   string
	StatusFinished  string
	GameOverDecoy   string
	AvgReactionTime string
	StartGame       string
	PlayAgain       string
	GradesTitle     string
	Grades          [6]GradeText
}

// Lookup returns the strings for lang, falling back to the default language.
func Lookup(lang Language) Translation {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[Default]
}

// Status renders the status line for a run. state and reason use the
// game's string forms ("idle", "waiting", "playing", "finished" and
// "success"/"decoy").
func (t Translation) Status(state, reason string, round, totalRounds int) string {
	switch state {
	case "idle":
		return t.StatusIdle
	case "waiting":
		return Format(t.StatusWaiting, round, totalRounds)
	case "playing":
		return Format(t.StatusPlaying, round, totalRounds)
	case "finished":
		if reason == "decoy" {
			return t.GameOverDecoy
		}
		return t.StatusFinished
	default:
		return ""
	}
}

// Format substitutes the {round} and {totalRounds} placeholders.
func Format(template string, round, totalRounds int) string {
	return strings.NewReplacer(
		"{round}", strconv.Itoa(round),
		"{totalRounds}", strconv.Itoa(totalRounds),
	).Replace(template)
}

var translations = map[Language]Translation{
	English: {
		Title:           "Reaction Time Test",
		Introduction:    "A simple test to measure your reaction time to a visual stimulus. Rules are simple: click the black dot as soon as it appears. In later rounds, avoid the red decoy dots! The average human reaction time is ~250ms. With practice, many can reach 200ms. Feel free to test as many times as you like.",
		StatusIdle:      "Click \"Start\" to begin.",
		StatusWaiting:   "Round {round}/{totalRounds}. Get ready...",
		StatusPlaying:   "Round {round}/{totalRounds}. Click the BLACK dot!",
		StatusFinished:  "Game Over!",
		GameOverDecoy:   "Game Over! You clicked the red dot.",
		AvgReactionTime: "Your average reaction time is:",
		StartGame:       "Start Game",
		PlayAgain:       "Play Again",
		GradesTitle:     "Reaction Time Grades",
		Grades:          [6]GradeText{
			{Name: "God Tier", General: "Are you human? Unbelievable reaction speed.", Overwatch: "Perfect for a Tracer/Genji main, dominating the backline.", LoL: "You belong in the mid lane playing assassins like Zed or Akali."},
			{Name: "Diamond", General: "Pro-level speed. You can react to anything.", Overwatch: "Excel as a hitscan DPS like Cassidy or Ashe.", LoL: "A perfect fit for an ADC like Kai'Sa or Vayne who needs to dodge everything."},
			{Name: "Gold", General: "Excellent! Faster than most players.", Overwatch: "You'd be a great playmaking support like Ana or Kiriko.", LoL: "Try a versatile Jungler like Lee Sin to make plays across the map."},
			{Name: "Silver", General: "Solid and reliable. A dependable teammate.", Overwatch: "A reliable Tank like Reinhardt or D.Va would suit you well.", LoL: "You'd do well in Top lane with a strong frontliner like Garen or Ornn."},
			{Name: "Bronze", General: "Perfectly normal human reaction time.", Overwatch: "Try a support with consistent value that doesn't require flick shots, like Mercy.", LoL: "A scaling mage like Lux or Veigar would be a good fit."},
			{Name: "Needs Practice", General: "A bit on the slower side, but practice makes perfect!", Overwatch: "Start with a straightforward tank like Winston to learn the game sense.", LoL: "Learn the ropes with a simple and effective support like Janna or Soraka."},
		},
	},
	Korean: {
		Title:           "반응 속도 테스트",
		Introduction:    "시각적 자극에 대한 당신의 반응 속도를 측정하는 간단한 테스트입니다. 규칙은 간단합니다: 검은 점이 나타나면 최대한 빨리 클릭하세요. 후반 라운드에서는 미끼인 빨간 점을 피해야 합니다! 평균적인 사람의 반응 속도는 약 250ms입니다. 훈련을 통해 많은 사람들이 200ms에 도달할 수 있습니다. 얼마든지 여러 번 테스트해보세요.",
		StatusIdle:      "시작 버튼을 눌러 게임을 시작하세요.",
		StatusWaiting:   "라운드 {round}/{totalRounds}. 준비하세요...",
		StatusPlaying:   "라운드 {round}/{totalRounds}. 검은 점을 클릭하세요!",
		StatusFinished:  "게임 종료!",
		GameOverDecoy:   "게임 오버! 빨간 점을 클릭했습니다.",
		AvgReactionTime: "평균 반응 속도:",
		StartGame:       "게임 시작",
		PlayAgain:       "다시하기",
		GradesTitle:     "반응 속도 등급",
		Grades:          [6]GradeText{
			{Name: "신", General: "혹시 사람이 아니신가요? 믿을 수 없는 반응 속도입니다.", Overwatch: "트레이서/겐지 주력 플레이어에게 완벽하며, 적의 후방을 지배할 수 있습니다.", LoL: "제드나 아칼리 같은 암살자로 미드 라인을 지배할 운명입니다."},
			{Name: "다이아몬드", General: "프로 수준의 속도. 어떤 상황에도 반응할 수 있습니다.", Overwatch: "캐서디나 애쉬 같은 히트스캔 DPS로 뛰어난 활약을 펼칠 수 있습니다.", LoL: "모든 것을 피해야 하는 카이사나 베인 같은 원거리 딜러에게 안성맞춤입니다."},
			{Name: "골드", General: "훌륭합니다! 대부분의 플레이어보다 빠릅니다.", Overwatch: "아나나 키리코처럼 플레이를 만드는 서포터가 되면 훌륭할 것입니다.", LoL: "맵 전체에서 활약할 수 있는 리 신 같은 다재다능한 정글러를 시도해보세요."},
			{Name: "실버", General: "견고하고 신뢰할 수 있습니다. 믿음직한 팀원입니다.", Overwatch: "라인하르트나 D.Va 같은 든든한 탱커가 잘 어울립니다.", LoL: "가렌이나 오른 같은 강력한 선봉장으로 탑 라인에서 좋은 성과를 낼 것입니다."},
			{Name: "브론즈", General: "완벽하게 평범한 인간의 반응 속도입니다.", Overwatch: "메르시처럼 순간적인 조준이 필요 없는 꾸준한 가치를 지닌 서포터를 해보세요.", LoL: "럭스나 베이가 같은 성장형 마법사가 좋은 선택이 될 것입니다."},
			{Name: "연습 필요", General: "조금 느린 편이지만, 연습이 완벽을 만듭니다!", Overwatch: "게임 감각을 익히기 위해 윈스턴 같은 직관적인 탱커로 시작해보세요.", LoL: "잔나나 소라카처럼 간단하고 효과적인 서포터로 기본기를 다져보세요."},
		},
	},
	Spanish: {
		Title:           "Prueba de Tiempo de Reacción",
		Introduction:    "Esta es una prueba simple para medir tu tiempo de reacción a un estímulo visual. Las reglas son sencillas: haz clic en el punto negro tan pronto como aparezca. ¡En rondas posteriores, evita los puntos rojos de señuelo! El tiempo de reacción humano promedio es de alrededor de 250ms. Con práctica, muchos pueden alcanzar los 200ms. Siéntete libre de probar tantas veces como quieras.",
		StatusIdle:      "Haz clic en \"Iniciar\" para comenzar.",
		StatusWaiting:   "Ronda {round}/{totalRounds}. Prepárate...",
		StatusPlaying:   "Ronda {round}/{totalRounds}. ¡Haz clic en el punto NEGRO!",
		StatusFinished:  "¡Juego Terminado!",
		GameOverDecoy:   "¡Juego Terminado! Hiciste clic en el punto rojo.",
		AvgReactionTime: "Tu tiempo de reacción promedio es:",
		StartGame:       "Iniciar Juego",
		PlayAgain:       "Jugar de Nuevo",
		GradesTitle:     "Niveles de Tiempo de Reacción",
		Grades:          [6]GradeText{
			{Name: "Nivel Dios", General: "¿Eres humano? Velocidad de reacción increíble.", Overwatch: "Perfecto para un main Tracer/Genji, dominando la retaguardia.", LoL: "Perteneces al carril central jugando asesinos como Zed o Akali."},
			{Name: "Diamante", General: "Velocidad de nivel profesional. Puedes reaccionar a cualquier cosa.", Overwatch: "Destaca como un DPS de hitscan como Cassidy o Ashe.", LoL: "Ideal para un ADC como Kai'Sa o Vayne que necesita esquivarlo todo."},
			{Name: "Oro", General: "¡Excelente! Más rápido que la mayoría de los jugadores.", Overwatch: "Serías un gran soporte creador de jugadas como Ana o Kiriko.", LoL: "Prueba un jungla versátil como Lee Sin para hacer jugadas por todo el mapa."},
			{Name: "Plata", General: "Sólido y confiable. Un compañero de equipo dependable.", Overwatch: "Un tanque confiable como Reinhardt o D.Va te iría bien.", LoL: "Te iría bien en el carril superior con un vanguardia fuerte como Garen u Ornn."},
			{Name: "Bronce", General: "Tiempo de reacción humano perfectamente normal.", Overwatch: "Prueba un soporte con valor constante que no requiera disparos rápidos, como Mercy.", LoL: "Un mago de escalado como Lux o Veigar sería una buena opción."},
			{Name: "Necesita Práctica", General: "Un poco lento, ¡pero la práctica hace al maestro!", Overwatch: "Comienza con un tanque sencillo como Winston para aprender la percepción del juego.", LoL: "Aprende con un soporte simple y efectivo como Janna o Soraka."},
		},
	},
	Chinese: {
		Title:           "反应速度测试",
		Introduction:    "这是一个简单的测试，用于测量您对视觉刺激的反应时间。规则很简单：黑点出现时，请尽快点击。在后面的回合中，请避开红色的诱饵点！人类的平均反应时间约为250毫秒。通过练习，许多人可以达到200毫高。欢迎您随时进行多次测试。",
		StatusIdle:      "点击“开始”以开始游戏。",
		StatusWaiting:   "第 {round}/{totalRounds} 回合。准备...",
		StatusPlaying:   "第 {round}/{totalRounds} 回合。点击黑点！",
		StatusFinished:  "游戏结束！",
		GameOverDecoy:   "游戏结束！你点击了红点。",
		AvgReactionTime: "你的平均反应时间是：",
		StartGame:       "开始游戏",
		PlayAgain:       "再玩一次",
		GradesTitle:     "反应速度等级",
		Grades:          [6]GradeText{
			{Name: "神级", General: "你是人类吗？难以置信的反应速度。", Overwatch: "完美适合猎空/源氏玩家，主宰后排。", LoL: "你属于中路，玩劫或阿卡丽这样的刺客。"},
			{Name: "钻石", General: "职业级速度。你能对任何事情做出反应。", Overwatch: "作为像卡西迪或艾什这样的即时命中DPS表现出色。", LoL: "非常适合需要躲避一切的ADC，如卡莎或薇恩。"},
			{Name: "黄金", General: "优秀！比大多数玩家都快。", Overwatch: "你会成为一个出色的 playmaker 辅助，比如安娜或雾子。", LoL: "尝试像李青这样多才多艺的打野，在地图上创造机会。"},
			{Name: "白银", General: "稳定可靠。一个可靠的队友。", Overwatch: "一个可靠的坦克，如莱因哈特或D.Va，会很适合你。", LoL: "你会在上路表现出色，使用像盖伦或奥恩这样的强大前排。"},
			{Name: "青铜", General: "完全正常的人类反应时间。", Overwatch: "尝试一个不需要甩枪的稳定型辅助，比如天使。", LoL: "像拉克丝或维迦这样的发育型法师会是一个不错的选择。"},
			{Name: "需要练习", General: "有点慢，但熟能生巧！", Overwatch: "从像温斯顿这样直观的坦克开始，学习游戏意识。", LoL: "用像迦娜或索拉卡这样简单有效的辅助来学习基础。"},
		},
	},
	Japanese: {
		Title:           "反応速度テスト",
		Introduction:    "これは視覚刺激に対するあなたの反応速度を測定するための簡単なテストです。ルールは簡単です：黒い点が表示されたら、できるだけ早くクリックしてください。後のラウンドでは、おとりの赤い点を避けてください！人間の平均反応時間は約250msです。練習すれば、多くの人が200msに到達できます。何度でも自由にテストしてください。",
		StatusIdle:      "「開始」をクリックしてゲームを始めます。",
		StatusWaiting:   "ラウンド {round}/{totalRounds}。準備してください...",
		StatusPlaying:   "ラウンド {round}/{totalRounds}。黒い点をクリック！",
		StatusFinished:  "ゲーム終了！",
		GameOverDecoy:   "ゲームオーバー！赤い点をクリックしました。",
		AvgReactionTime: "平均反応時間：",
		StartGame:       "ゲーム開始",
		PlayAgain:       "もう一度プレイ",
		GradesTitle:     "反応速度グレード",
		Grades:          [6]GradeText{
			{Name: "神ティア", General: "あなたは人間ですか？信じられないほどの反応速度です。", Overwatch: "トレーサー/ゲンジのメインに最適で、バックラインを支配します。", LoL: "あなたはミッドレーンに属し、ゼドやアカリのようなアサシンをプレイします。"},
			{Name: "ダイヤモンド", General: "プロレベルのスピード。何にでも反応できます。", Overwatch: "キャスディやアッシュのようなヒットスキャンDPSとして優れています。", LoL: "すべてを避ける必要があるカイ＝サやヴェインのようなADCに最適です。"},
			{Name: "ゴールド", General: "素晴らしい！ほとんどのプレイヤーよりも速いです。", Overwatch: "アナやキリコのようなプレイメイキングサポートとして素晴らしいでしょう。", LoL: "マップ全体でプレイを作るために、リー・シンのような多才なジャングラーを試してみてください。"},
			{Name: "シルバー", General: "堅実で信頼できます。頼りになるチームメイトです。", Overwatch: "ラインハルトやD.Vaのような信頼できるタンクがあなたに合っています。", LoL: "ガレンやオーンのような強力なフロントライナーでトップレーンでうまくやるでしょう。"},
			{Name: "ブロンズ", General: "完全に正常な人間の反応時間です。", Overwatch: "マーシーのようにフリックショットを必要としない一貫した価値を持つサポートを試してみてください。", LoL: "ラックスやベイガーのようなスケーリングメイジが良い選択でしょう。"},
			{Name: "要練習", General: "少し遅いですが、練習すれば完璧になります！", Overwatch: "ゲームセンスを学ぶために、ウィンストンのような分かりやすいタンクから始めましょう。", LoL: "ジャンナやソラカのようなシンプルで効果的なサポートで基本を学びましょう。"},
		},
	},
}
