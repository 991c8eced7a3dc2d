package utils

import (
	"context"
	"log"
	"time"

	"motmystere/db"
	"motmystere/models"
)

// Citations drôles (source: citations.ouest-france.fr)
var seedQuotes = []models.Quote{
	{
		Text:        "C'est drôle comme les gens qui se croient instruits éprouvent le besoin de faire chier le monde.",
		Author:      "Boris Vian",
		MissingWord: "drôle",
		Options:     []string{"drôle", "étrange", "bizarre", "curieux"},
	},
	{
		Text:        "Quand j'étais petit à la maison, le plus dur c'était la fin du mois... Surtout les trente derniers jours !",
		Author:      "Coluche",
		MissingWord: "dur",
		Options:     []string{"dur", "difficile", "pénible", "compliqué"},
	},
	{
		Text:        "C'est pas parce qu'on a rien à dire qu'il faut fermer sa gueule.",
		Author:      "Michel Audiard",
		MissingWord: "fermer",
		Options:     []string{"fermer", "garder", "serrer", "boucher"},
	},
	{
		Text:        "Il faut cueillir les cerises avec la queue. J'avais déjà du mal avec la main !",
		Author:      "Coluche",
		MissingWord: "cueillir",
		Options:     []string{"cueillir", "ramasser", "prendre", "attraper"},
	},
	{
		Text:        "Quand on mettra les cons sur orbite, t'as pas fini de tourner.",
		Author:      "Michel Audiard",
		MissingWord: "orbite",
		Options:     []string{"orbite", "espace", "ciel", "lune"},
	},
	{
		Text:        "Pourquoi essayer de faire semblant d'avoir l'air de travailler ? C'est de la fatigue inutile !",
		Author:      "Pierre Dac",
		MissingWord: "fatigue",
		Options:     []string{"fatigue", "perte", "gaspillage", "effort"},
	},
	{
		Text:        "Socrate disait: \"Je sais que je ne sais rien\", donc chacun de nous en sait plus que Socrate, puisque nous savons au moins que Socrate ne savait rien.",
		Author:      "Jean Amadou",
		MissingWord: "sait",
		Options:     []string{"sait", "connaît", "apprend", "comprend"},
	},
	{
		Text:        "Boire du café empêche de dormir. Par contre, dormir empêche de boire du café.",
		Author:      "Philippe Geluck",
		MissingWord: "empêche",
		Options:     []string{"empêche", "interdit", "bloque", "arrête"},
	},
	{
		Text:        "Si le ridicule se mettait à tuer, les problèmes démographiques seraient vite réglés.",
		Author:      "Gaëtan Faucer",
		MissingWord: "ridicule",
		Options:     []string{"ridicule", "bêtise", "folie", "absurdité"},
	},
	{
		Text:        "Un pigeon, c'est plus con qu'un dauphin, d'accord... mais ça vole.",
		Author:      "Michel Audiard",
		MissingWord: "vole",
		Options:     []string{"vole", "plane", "s'envole", "décolle"},
	},
	{
		Text:        "Le meilleur argument contre la démocratie est un entretien de cinq minutes avec un électeur moyen.",
		Author:      "Winston Churchill",
		MissingWord: "démocratie",
		Options:     []string{"démocratie", "république", "politique", "gouvernement"},
	},
	{
		Text:        "Une star, c'est quelqu'un qui travaille dur pour être connu et qui, ensuite, porte des lunettes noires pour qu'on ne le reconnaisse pas.",
		Author:      "Fred Allen",
		MissingWord: "connu",
		Options:     []string{"connu", "célèbre", "fameux", "réputé"},
	},
	{
		Text:        "Le premier homme qui est mort a dû être drôlement surpris.",
		Author:      "Georges Wolinski",
		MissingWord: "surpris",
		Options:     []string{"surpris", "étonné", "choqué", "stupéfait"},
	},
	{
		Text:        "Ça m'en touche une sans faire bouger l'autre",
		Author:      "Jacques Chirac",
		MissingWord: "touche",
		Options:     []string{"touche", "atteint", "affecte", "intéresse"},
	},
	{
		Text:        "Les femmes viennent de Venus. Les hommes mangent des Mars.",
		Author:      "MC Solaar",
		MissingWord: "mangent",
		Options:     []string{"mangent", "consomment", "dévorent", "avalent"},
	},
	{
		Text:        "Faut se méfier de la connerie, les gens s'en emparent facilement.",
		Author:      "Gaëtan Faucer",
		MissingWord: "connerie",
		Options:     []string{"connerie", "bêtise", "folie", "absurdité"},
	},
	{
		Text:        "Souffrant d'insomnie, j'échangerais un matelas de plumes contre un sommeil de plomb.",
		Author:      "Pierre Dac",
		MissingWord: "sommeil",
		Options:     []string{"sommeil", "repos", "dodo", "sieste"},
	},
	{
		Text:        "Si l'herbe est plus verte dans le jardin de ton voisin, laisse-le s'emmerder à la tondre.",
		Author:      "Fred Allen",
		MissingWord: "verte",
		Options:     []string{"verte", "belle", "haute", "fraîche"},
	},
	{
		Text:        "On dit que le ridicule tue. Est-ce vrai ? Pas du tout! Regardez autour de vous, il n'y a que des gens bien portants.",
		Author:      "Raymond Devos",
		MissingWord: "ridicule",
		Options:     []string{"ridicule", "bêtise", "folie", "absurdité"},
	},
	{
		Text:        "Je me suis marié deux fois: deux catastrophes. Ma première femme est partie, la deuxième est restée.",
		Author:      "Francis Blanche",
		MissingWord: "catastrophes",
		Options:     []string{"catastrophes", "désastres", "échecs", "drames"},
	},
}

// SeedQuotes fills the quote collection on first boot and leaves it alone
// afterwards.
func SeedQuotes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := db.Quotes.Count(ctx)
	if err != nil {
		log.Printf("Failed to count quotes, skipping seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if err := db.Quotes.InsertMany(ctx, seedQuotes); err != nil {
		log.Printf("Failed to seed quotes: %v", err)
		return
	}
	log.Printf("Seeded %d quotes", len(seedQuotes))
}
