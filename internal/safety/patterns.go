package safety

// Tiered self-harm and crisis phrase sets. All phrases are stored lowercase
// and diacritic-free; matching runs over folded tokens. These patterns exist
// to trigger safety resources, not to diagnose anything.

// Severe tier: a single match forces the severe level on its own.
var severePhrases = map[string][]string{
	"en": {
		"kill myself",
		"end my life",
		"commit suicide",
		"going to end it",
		"gonna end it",
		"planning to end",
		"off myself",
		"offing myself",
		"unalive myself",
	},
	"es": {
		"me voy a matar",
		"voy a matarme",
		"quitarme la vida",
		"acabar con mi vida",
		"poner fin a mi vida",
		"suicidarme",
	},
	"pt": {
		"vou me matar",
		"quero me matar",
		"tirar minha vida",
		"tirar a minha vida",
		"acabar com a minha vida",
		"dar fim a minha vida",
	},
}

// Hard tier: strong indicators requiring a safety response.
var hardPhrases = map[string][]string{
	"en": {
		"end it all",
		"ending it all",
		"no reason to live",
		"nothing to live for",
		"want to die",
		"wanna die",
		"want to be dead",
		"wish i was dead",
		"wish i were dead",
		"better off dead",
		"no one would miss me",
		"nobody would care if i",
		"suicide",
		"suicidal",
		"kms",
		"ctb",
		"sewerslide",
		"sewer slide",
		"self delete",
		"selfdelete",
		"permanent sleep",
		"eternal sleep",
		"self harm",
		"self injury",
		"hurt myself",
		"hurting myself",
		"cut myself",
		"cutting myself",
		"burning myself",
		"burn myself",
		"cant go on",
		"can't go on",
		"cannot go on",
		"done with life",
		"done living",
		"tired of living",
		"tired of being alive",
		"giving up on life",
		"no point in living",
		"no hope left",
		"final goodbye",
		"wont be here much longer",
		"won't be here much longer",
	},
	"es": {
		"quiero morir",
		"me quiero morir",
		"deseo morir",
		"quiero morirme",
		"no quiero vivir",
		"no quiero seguir viviendo",
		"ya no quiero vivir",
		"prefiero morir",
		"estaria mejor muerto",
		"estaria mejor muerta",
		"estarian mejor sin mi",
		"nadie me extranaria",
		"a nadie le importo",
		"suicidio",
		"acabar con todo",
		"terminar con todo",
		"matarme",
		"autolesion",
		"autolesionarme",
		"hacerme dano",
		"me hago dano",
		"cortarme",
		"me corto",
		"quemarme",
		"no puedo mas",
		"ya no puedo mas",
		"no aguanto mas",
		"sin ganas de vivir",
		"perdi las ganas de vivir",
		"no hay esperanza",
		"sin esperanza",
		"me doy por vencido",
		"me doy por vencida",
	},
	"pt": {
		"quero morrer",
		"eu quero morrer",
		"desejo morrer",
		"nao quero viver",
		"nao quero mais viver",
		"prefiro morrer",
		"estaria melhor morto",
		"estaria melhor morta",
		"estariam melhor sem mim",
		"ninguem sentiria minha falta",
		"ninguem se importa",
		"ninguem liga pra mim",
		"suicidio",
		"me matar",
		"queria me matar",
		"acabar com tudo",
		"dar fim a tudo",
		"automutilacao",
		"autolesao",
		"me machucar",
		"me machuco",
		"me cortar",
		"me corto",
		"me queimar",
		"me queimo",
		"nao aguento mais",
		"eu nao aguento",
		"nao consigo mais",
		"nao da mais",
		"perdi a vontade de viver",
		"sem vontade de viver",
		"sem razao para viver",
		"sem esperanca",
		"nao ha esperanca",
		"desisti de tudo",
		"cansado de viver",
		"cansada de viver",
		"cansado de existir",
		"cansada de existir",
	},
}

// Soft tier: distress signals that need context; often hyperbole.
var softPhrases = map[string][]string{
	"en": {
		"kill me",
		"i'm dead",
		"im dead",
		"dead inside",
		"want to disappear",
		"wanna disappear",
		"just disappear",
		"fade away",
		"escape everything",
		"cant take it anymore",
		"can't take it anymore",
		"cant take it",
		"cant deal",
		"can't deal",
		"so done",
		"i'm done",
		"im done",
		"need to escape",
		"need an escape",
		"want it to stop",
		"make it stop",
	},
	"es": {
		"me muero",
		"quiero desaparecer",
		"escapar de todo",
		"huir de todo",
		"no puedo seguir",
		"ya no puedo",
		"estoy harto",
		"estoy harta",
		"no aguanto",
		"necesito escapar",
	},
	"pt": {
		"to morrendo",
		"quero sumir",
		"quero desaparecer",
		"fugir de tudo",
		"nao consigo continuar",
		"nao da pra continuar",
		"to de saco cheio",
		"preciso fugir",
		"preciso escapar",
	},
}

// Crisis indicators escalate a tier hit. They are universal across the
// supported languages.
var crisisIndicators = map[string][]string{
	"urgency": {
		"tonight", "today", "right now", "this moment",
		"before tomorrow", "cant wait", "running out of time",
		"esta noche", "ahora mismo", "ahora", "hoy",
		"hoje", "agora", "agora mesmo",
	},
	"finality": {
		"goodbye", "never again", "forever",
		"the end", "its over", "all over",
		"adios", "despedida", "nunca mas",
		"adeus", "tchau pra sempre", "nunca mais",
	},
	"settling": {
		"giving away", "give away my", "take care of my",
		"my belongings", "who gets",
		"regalar mis", "quiero que tengas", "cuida de mi",
		"dando minhas coisas", "quero que fique com", "cuida do meu",
	},
	"help_seeking": {
		"need help", "help me", "someone help",
		"dont know what to do", "who can i talk to",
		"crisis line", "hotline", "suicide hotline",
		"necesito ayuda", "ayudame", "alguien que me ayude",
		"preciso de ajuda", "me ajuda", "alguem me ajuda",
	},
}
