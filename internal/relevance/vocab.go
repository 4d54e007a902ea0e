package relevance

// domainRule binds a domain's search-term membership set to its allow and
// deny lists. All matching is lower-case substring containment: searches
// against the search term, allow/deny against the title.
type domainRule struct {
	name     string
	searches []string
	allow    []string
	deny     []string
}

// refugeeTerms is shared by the search-term gate and the combined-text gate.
// Curated across twelve languages.
var refugeeTerms = []string{
	"ukrain", "refugee", "asylum", "displaced", "humanitarian",
	"flüchtling", "ukraine", "ukrainisch", "asyl", "geflüchtet",
	"réfugié", "ukrainien", "demandeur asile", "déplacé",
	"refugiado", "ucraniano", "asilo", "desplazado",
	"profugo", "rifugiato", "ucraino", "richiedente asilo",
	"vluchteling", "oekraïens", "asielzoeker",
	"uchodźca", "ukraiński", "azylant", "przesiedlony",
	"uprchlík", "ukrajinský", "přesídlený",
	"utečenec", "azylant",
	"flykting", "ukrainsk", "asylsökande",
	"flyktning", "asylsøker",
	"flygtning", "asylansøger",
}

// strictBlacklist rejects executive titles in the fallback path only.
var strictBlacklist = []string{
	"senior manager", "director", "head of", "chief executive",
	"principal engineer", "lead architect", "vice president",
	"geschäftsführer", "vorstandsvorsitzender", "hauptgeschäftsführer",
	"directeur général", "président directeur", "directeur exécutif",
	"director general", "director ejecutivo", "consejero delegado",
	"amministratore delegato", "direttore generale",
	"algemeen directeur", "uitvoerend directeur",
	"dyrektor generalny", "prezes zarządu",
	"generální ředitel", "výkonný ředitel",
}

// domainRules run in declaration order; the first domain whose allow list
// matches the title without a deny hit accepts the vacancy.
var domainRules = []domainRule{
	{
		name: "food-retail",
		searches: []string{
			"waiter", "waitress", "server", "cashier", "shop assistant", "sales assistant",
			"dishwasher", "cook", "chef", "bartender", "retail",
			"kellner", "kellnerin", "bedienung", "kassierer", "verkäufer", "spüler",
			"koch", "barkeeper", "einzelhandel",
			"serveur", "serveuse", "caissier", "vendeur", "plongeur", "cuisinier",
			"barman", "commerce",
			"camarero", "camarera", "cajero", "vendedor", "friegaplatos", "cocinero",
			"comercio",
			"cameriere", "cameriera", "cassiere", "commesso", "lavapiatti", "cuoco",
			"barista", "commercio",
			"ober", "serveerster", "kassière", "verkoper", "afwasser", "kok",
			"winkel",
			"kelner", "kelnerka", "kasjer", "sprzedawca", "zmywacz", "kucharz",
			"handel",
			"číšník", "číšnice", "pokladník", "prodavač", "umývač", "kuchař",
			"obchod",
			"čašník", "čašníčka", "predavač", "kuchár",
			"servitör", "servitris", "kassör", "säljare", "diskare", "kock",
			"servitør", "kasserer", "selger", "oppvasker", "kokk",
			"tjener", "sælger", "opvasker",
		},
		allow: []string{
			"waiter", "waitress", "server", "food service", "restaurant staff",
			"hospitality", "front of house", "dining", "service staff", "table service",
			"host", "hostess", "floor staff", "waiting staff",
			"kellner", "kellnerin", "bedienung", "servicekraft", "servicemitarbeiter",
			"gastronomie", "restaurant", "cafe", "bistro", "service", "bewirtung",
			"gastronomiemitarbeiter", "restaurantmitarbeiter", "servierkraft",
			"serveur", "serveuse", "garçon", "restauration", "brasserie",
			"café", "bistrot", "personnel salle", "agent service", "hôtesse",
			"commis salle", "aide serveur",
			"camarero", "camarera", "mesero", "mesera", "servicio", "restaurante",
			"hostelería", "bar", "cafetería", "personal sala", "atención cliente",
			"auxiliar hostelería",
			"cameriere", "cameriera", "addetto sala", "servizio", "ristorazione",
			"ristorante", "caffè", "personale sala", "addetto servizio",
			"commesso bar",
			"ober", "serveerster", "bediening", "horeca", "servicemedewerker",
			"gastheer", "gastvrouw", "horecamedewerker",
			"kelner", "kelnerka", "obsługa", "serwis", "restauracja", "gastronomia",
			"kawiarnia", "pracownik sali", "obsługa klienta",
			"číšník", "číšnice", "obsluha", "servis", "restaurace",
			"kavárna", "obsluha hostů", "personál",
			"čašník", "čašníčka", "reštaurácia", "gastronómia",
			"servitör", "servitris", "serverare", "restaurang", "värd", "värdinna",
			"serveringspersonal",
			"servitør", "tjener", "kafé", "vertskap", "serveringspersonale",
			"vært", "værtinde",
			"cashier", "till operator", "checkout", "shop assistant", "sales assistant",
			"retail assistant", "store clerk", "sales associate", "shop worker",
			"customer service", "retail", "supermarket", "store",
			"kassierer", "kassiererin", "verkäufer", "verkäuferin", "einzelhandel",
			"verkaufsmitarbeiter", "handelsmitarbeiter", "supermarkt", "laden",
			"verkaufsaushilfe", "kassenkraft", "filialarbeiter",
			"caissier", "caissière", "vendeur", "vendeuse", "commerce", "magasin",
			"grande distribution", "supermarché", "employé libre service",
			"conseiller vente", "hôtesse caisse",
			"cajero", "cajera", "vendedor", "vendedora", "dependiente", "comercio",
			"supermercado", "tienda", "auxiliar ventas", "reponedor",
			"cassiere", "cassiera", "commesso", "commessa", "addetto vendite",
			"commercio", "supermercato", "negozio", "addetto cassa",
			"kassière", "kassamedewerker", "verkoper", "verkoopster", "winkelmedewerker",
			"winkel",
			"kasjer", "kasjerka", "sprzedawca", "sprzedawczyni", "handel",
			"sklep", "obsługa kasy", "pracownik sklepu",
			"pokladník", "pokladní", "prodavač", "prodavačka", "obchod",
			"prodejna", "obsluha pokladny",
			"predavač", "predavačka",
			"kassör", "kassörska", "säljare", "butik", "affär",
			"butikspersonal", "butiksbiträde",
			"kasserer", "selger", "butikk", "butikkmedarbeider",
			"sælger", "butikspersonale",
			"cook", "chef", "kitchen assistant", "prep cook", "line cook", "dishwasher",
			"kitchen porter", "kitchen staff", "commis chef", "sous chef",
			"koch", "köchin", "küchenhilfe", "küchenhelfer", "spüler", "spülkraft",
			"küchenmitarbeiter", "chefkoch", "hilfskoch",
			"cuisinier", "cuisinière", "commis cuisine", "aide cuisinier", "plongeur",
			"personnel cuisine", "chef cuisine", "second cuisine",
			"cocinero", "cocinera", "ayudante cocina", "friegaplatos", "personal cocina",
			"pinche cocina", "jefe cocina",
			"cuoco", "cuoca", "aiuto cuoco", "lavapiatti", "addetto cucina",
			"commis",
			"kok", "keukenhulp", "afwasser", "keukenmedewerker", "chef-kok",
			"keukenassistent",
			"kucharz", "kucharka", "pomoc kuchenna", "zmywacz", "pracownik kuchni",
			"pomocnik kucharza", "szef kuchni",
			"kuchař", "kuchařka", "kuchyňský pomocník", "umývač", "kuchyně",
			"pomocník kuchaře", "šéfkuchař",
			"kuchár", "kuchárka", "kuchynský pomocník",
			"kock", "kökspersonal", "diskare",
			"kokk", "kjøkkenpersonell", "oppvasker",
			"køkkenpersonale", "opvasker",
			"bartender", "barman", "barmaid", "mixologist", "bar staff",
			"barkeeper", "barmann", "barmixer", "barkraft",
			"mixologue", "serveur bar",
			"cantinero", "coctelero", "camarero bar",
			"barista", "addetto bar",
			"barmedewerker",
			"obsługa baru",
			"barmanka", "obsluha baru",
			"part time", "full time", "student job", "temporary", "seasonal",
			"entry level", "no experience", "trainee",
			"aushilfe", "teilzeit", "vollzeit", "nebenjob", "minijob", "student",
			"ungelernt", "ohne erfahrung", "praktikant",
			"temps partiel", "temps plein", "saisonnier", "étudiant", "débutant",
			"sans expérience", "stagiaire",
			"tiempo parcial", "jornada completa", "estudiante", "temporal",
			"sin experiencia", "principiante", "becario",
			"part-time", "tempo pieno", "studente", "stagionale", "senza esperienza",
			"stagista",
			"parttime", "fulltime", "tijdelijk", "zonder ervaring",
			"starter", "stagiair",
			"praca tymczasowa", "etat", "sezonowa", "bez doświadczenia",
			"początkujący", "praktykant",
			"částečný úvazek", "plný úvazek", "sezónní",
			"bez zkušeností", "začátečník",
			"deltid", "heltid", "tillfällig", "utan erfarenhet",
			"midlertidig", "uten erfaring",
			"fuldtid", "studerende", "uden erfaring",
		},
		deny: []string{
			"manager", "director", "head of", "chief", "supervisor", "coordinator",
			"team leader", "team lead", "senior manager", "general manager",
			"assistant manager", "deputy manager", "area manager", "regional manager",
			"leiter", "führung", "teamleiter", "abteilungsleiter",
			"geschäftsführer", "bereichsleiter", "stellvertretender leiter",
			"regionalleiter", "filialleiter", "verkaufsleiter",
			"directeur", "responsable", "chef équipe", "coordinateur", "superviseur",
			"directeur adjoint", "chef service", "responsable secteur",
			"jefe", "gerente", "coordinador",
			"encargado", "jefe equipo", "jefe ventas",
			"direttore", "responsabile", "capo", "coordinatore", "supervisore",
			"capo reparto", "capo squadra", "responsabile vendite",
			"leidinggevende", "teamleider", "afdelingshoofd",
			"regiomanager", "filiaalmanager", "verkoopleider",
			"kierownik", "dyrektor", "szef", "koordynator",
			"kierownik zespołu", "kierownik sprzedaży", "lider",
			"vedoucí", "ředitel", "manažer", "koordinátor", "supervizor",
			"vedoucí týmu", "vedoucí prodeje",
			"vedúci", "riaditeľ", "manažér",
			"ledare", "ansvarig", "föreståndare",
			"leder", "sjef", "ansvarlig",
			"software", "developer", "programmer", "engineer", "technical", "it ",
			"system", "network", "database", "web developer", "software engineer",
			"entwickler", "programmierer", "ingenieur", "technisch",
			"netzwerk", "datenbank", "it-", "informatik",
			"logiciel", "développeur", "programmeur", "ingénieur", "technique",
			"système", "réseau", "informatique",
			"desarrollador", "programador", "ingeniero", "técnico",
			"sistema", "informático",
			"sviluppatore", "programmatore", "ingegnere", "tecnico",
			"informatico",
			"ontwikkelaar", "programmeur", "systeem",
			"programista", "inżynier", "techniczny", "informatyk",
			"vývojář", "programátor", "inženýr", "technický",
			"systém", "informatik",
			"account manager", "sales manager", "business development", "key account",
			"sales representative", "account executive", "commercial",
			"vertriebsleiter", "außendienst", "vertriebsmitarbeiter",
			"grands comptes", "responsable commercial", "chargé affaires",
			"comercial", "desarrollo negocio", "cuentas clave",
			"representante ventas", "ejecutivo cuentas",
			"commerciale", "sviluppo business", "account",
			"agente commerciale",
			"handlowiec", "przedstawiciel", "sprzedaż zewnętrzna",
			"obchodník", "obchodní zástupce",
			"consultant", "specialist", "expert", "professional", "senior",
			"konsultant", "spezialist", "experte", "fachkraft",
			"spécialiste", "professionnel",
			"consultor", "especialista", "experto", "profesional",
			"consulente", "specialista", "esperto", "professionista",
			"specjalista", "ekspert", "profesjonalista",
			"konzultant", "profesionál",
		},
	},
	{
		name: "transport",
		searches: []string{
			"driver", "taxi driver", "delivery driver", "courier", "truck driver", "bus driver",
			"fahrer", "taxifahrer", "lieferfahrer", "kurier", "lkw fahrer", "busfahrer",
			"chauffeur", "conducteur", "livreur", "coursier", "routier", "chauffeur bus",
			"conductor", "taxista", "repartidor", "mensajero", "camionero", "conductor autobús",
			"autista", "tassista", "corriere", "fattorino", "camionista", "autista autobus",
			"taxichauffeur", "bezorger", "koerier", "vrachtwagenchauffeur", "buschauffeur",
			"kierowca", "taksówkarz", "dostawca", "kierowca ciężarówki", "kierowca autobusu",
			"řidič", "taxikář", "kurýr", "rozvozce", "řidič nákladního", "řidič autobusu",
			"vodič", "taxikár", "kuriér", "rozvozca", "vodič nákladného",
			"förare", "taxiförare", "budförare", "kurír", "lastbilsförare", "bussförare",
			"sjåfør", "taxisjåfør", "budsjåfør", "kurér", "lastebilsjåfør", "bussjåfør",
			"chauffør", "taxichauffør", "budchauffør", "lastbilchauffør", "buschauffør",
		},
		allow: []string{
			"driver", "chauffeur", "operator", "delivery", "transport", "logistics",
			"taxi", "uber", "lyft", "van", "truck", "lorry", "hgv", "bus", "coach",
			"driving", "courier", "freight", "haulage",
			"fahrer", "kraftfahrer", "berufskraftfahrer", "fahrzeugführer",
			"taxifahrer", "busfahrer", "lkwfahrer", "lieferfahrer", "kurier",
			"speditionsfahrer", "transportfahrer", "auslieferungsfahrer",
			"spedition", "logistik", "fahrdienst", "mobilität",
			"conducteur", "livreur", "coursier", "transporteur",
			"camion", "poids lourd", "livraison", "logistique",
			"distribution", "véhicule", "conduite",
			"conductor", "chofer", "taxista", "repartidor", "mensajero",
			"camionero", "transportista", "logística", "reparto", "distribución",
			"vehículo", "conducción", "entrega",
			"autista", "conducente", "tassista", "corriere", "fattorino",
			"camionista", "autotrasportatore", "trasporto", "logistica", "consegne",
			"distribuzione", "veicolo", "guida",
			"bestuurder", "taxichauffeur", "bezorger", "koerier",
			"vrachtwagenchauffeur", "buschauffeur", "logistiek",
			"bezorging", "distributie", "voertuig", "rijden",
			"kierowca", "szofer", "taksówkarz", "dostawca",
			"przewoźnik", "spedytor", "logistyka", "spedycja",
			"dostawa", "dystrybucja", "pojazd", "jazda",
			"řidič", "šofér", "taxikář", "kurýr", "rozvozce",
			"dopravce", "spedice", "logistik", "přeprava", "doprava",
			"distribuce", "vozidlo", "řízení",
			"vodič", "taxikár", "kuriér", "rozvozca",
			"dopravca", "logistika", "preprava", "distribúcia",
			"förare", "chaufför", "taxiförare", "budförare", "kurír",
			"lastbilsförare", "bussförare", "leverans", "fordon", "körning",
			"sjåfør", "taxisjåfør", "budsjåfør", "kurér", "lastebilsjåfør",
			"bussjåfør", "logistikk", "levering", "distribusjon",
			"chauffør", "taxichauffør", "budchauffør", "lastbilchauffør",
			"buschauffør",
			"bolt", "glovo", "deliveroo", "foodora", "wolt", "just eat",
			"dhl", "ups", "fedex", "dpd", "gls", "hermes", "amazon",
			"food delivery", "meal delivery", "restaurant delivery",
			"essenslieferung", "pizza lieferung", "essen fahren",
			"livraison repas", "livraison restauration", "livraison pizza",
			"entrega comida", "reparto comida", "entrega pizza",
			"consegna cibo", "consegna pizza", "delivery food",
			"bezorging eten", "maaltijdbezorging", "pizza bezorging",
			"dostawa jedzenia", "dostawa pizzy", "rozwożenie jedzenia",
			"rozvoz jídla", "rozvoz pizzy", "donáška jedla",
			"matleverans", "pizzaleverans", "mat levering", "pizza levering",
			"madlevering",
			"bicycle", "bike", "cyclist", "rider", "fahrrad", "rad", "vélo",
			"bicicleta", "bici", "fiets", "rower", "kolo", "cykel", "sykkel",
			"motorcycle", "motorbike", "scooter", "motorrad", "roller",
			"moto", "motor", "motocykl", "motorcykel", "motorsykkel",
		},
		deny: []string{
			"dispatcher", "coordinator", "manager", "office", "planning", "admin",
			"disponent", "koordinator", "büro", "verwaltung", "planung",
			"répartiteur", "coordinateur", "bureau", "administration",
			"coordinador", "oficina", "planificación", "administración",
			"coordinatore", "ufficio", "pianificazione", "amministrazione",
			"coördinator", "kantoor", "administratie",
			"dyspozytor", "koordynator", "biuro", "planowanie", "administracja",
			"dispečer", "koordinátor", "kancelář", "plánování", "správa",
			"mechanic", "maintenance", "repair", "technician",
			"mechaniker", "wartung", "reparatur", "techniker",
			"mécanicien", "entretien", "réparation", "technicien",
			"mecánico", "mantenimiento", "reparación", "técnico",
			"meccanico", "manutenzione", "riparazione", "tecnico",
			"monteur", "onderhoud", "reparatie", "technicus",
			"mechanik", "konserwacja", "naprawa", "technik",
			"údržba", "oprava",
		},
	},
	{
		name: "construction-warehouse",
		searches: []string{
			"construction worker", "builder", "warehouse worker", "packer", "loader",
			"factory worker", "production worker", "labourer", "helper",
			"bauarbeiter", "handwerker", "lagerarbeiter", "kommissionierer",
			"produktionsarbeiter", "fabrikarbeiter", "hilfsarbeiter", "helfer",
			"ouvrier", "manutentionnaire", "préparateur", "magasinier", "manoeuvre",
			"ouvrier production", "employé entrepôt",
			"obrero", "operario", "mozo", "preparador", "operario almacén",
			"trabajador construcción", "peón",
			"operaio", "magazziniere", "addetto", "manovale", "operaio edile",
			"addetto produzione",
			"bouwvakker", "magazijnmedewerker", "orderpicker", "productiemedewerker",
			"lader",
			"robotnik", "pracownik", "magazynier", "pakowacz", "operator",
			"robotnik budowlany", "pracownik produkcji",
			"dělník", "pracovník", "skladník", "balič", "operátor",
			"stavební dělník", "výrobní dělník",
		},
		allow: []string{
			"construction", "builder", "building", "site", "trades", "labourer",
			"groundworker", "general operative", "site operative", "handyman",
			"bau", "bauarbeiter", "bauhilfsarbeiter", "bauhelfer", "handwerker",
			"baugewerbe", "baubranche", "baustelle", "monteur", "baustellenhelfer",
			"bâtiment", "ouvrier bâtiment", "manoeuvre", "chantier",
			"travaux", "maçon", "aide maçon", "ouvrier polyvalent",
			"construcción", "obrero construcción", "peón", "albañil", "oficial",
			"ayudante", "obra", "edificación",
			"edile", "costruzioni", "operaio edile", "manovale", "muratore",
			"cantiere", "addetto cantiere", "operaio generico",
			"bouw", "bouwvakker", "bouwplaats", "grondwerker", "hulpkracht",
			"bouwmedewerker", "allround medewerker",
			"budowa", "robotnik budowlany", "pracownik budowy", "pomocnik",
			"budowlaniec", "robotnik", "pracownik fizyczny",
			"stavba", "stavební dělník", "pracovník stavby", "pomocník",
			"stavebnictví", "dělník", "pomocný pracovník",
			"warehouse", "picker", "packer", "loader", "operative", "handler",
			"order picker", "stock", "dispatch", "goods in", "fulfillment",
			"logistics", "distribution", "freight",
			"lager", "lagerarbeiter", "lagermitarbeiter", "lagerhelfer",
			"kommissionierer", "kommissionierung",
			"versand", "wareneingang", "logistik",
			"entrepôt", "magasinier", "préparateur commandes", "manutentionnaire",
			"agent logistique", "employé entrepôt", "cariste", "conditionnement",
			"expédition", "réception",
			"almacén", "operario almacén", "mozo", "preparador pedidos",
			"operador logística", "reponedor", "expedición", "recepción",
			"magazzino", "magazziniere", "addetto picking", "operatore",
			"addetto logistica", "preparazione ordini", "spedizioni",
			"magazijn", "magazijnmedewerker", "orderpicker",
			"logistiek medewerker", "inpakker", "expeditie", "ontvangst",
			"magazyn", "magazynier", "pracownik magazynu", "pakowacz",
			"operator magazynu", "kompletacja", "logistyk", "ekspedycja",
			"sklad", "skladník", "skladový pracovník", "balič",
			"operátor skladu", "kompletace", "expedice", "příjem",
			"production", "factory", "manufacturing", "assembly",
			"machine operator", "line worker", "process worker",
			"produktion", "produktionsmitarbeiter", "fabrik", "fabrikarbeiter",
			"fertigung", "fertigungsmitarbeiter", "montage", "maschinenarbeiter",
			"fließband", "industriearbeiter",
			"ouvrier production", "usine", "fabrication",
			"opérateur machine", "agent production", "chaîne production",
			"producción", "operario producción", "fábrica", "fabricación",
			"operador máquina", "cadena montaje", "industrial",
			"produzione", "operaio produzione", "fabbrica", "manifattura",
			"operatore macchine", "catena montaggio", "industriale",
			"productie", "productiemedewerker", "fabriek", "fabricage",
			"assemblage", "industrie",
			"produkcja", "robotnik produkcyjny", "fabryka", "wytwarzanie",
			"operator maszyn", "montaż", "przemysł",
			"výroba", "výrobní dělník", "továrna", "výrobní",
			"operátor strojů", "montáž", "průmysl",
			"entry level", "no experience", "unskilled", "manual", "physical",
			"general worker", "temp worker", "casual", "seasonal",
			"ungelernt", "ohne erfahrung", "hilfsarbeiter", "körperlich",
			"zeitarbeit", "leiharbeit", "aushilfe", "saisonarbeit",
			"non qualifié", "sans expérience", "travail physique", "manuel",
			"intérim", "temporaire", "saisonnier",
			"sin experiencia", "trabajo físico", "temporal",
			"operario", "eventual",
			"senza esperienza", "lavoro fisico", "manuale", "temporaneo",
			"stagionale",
			"zonder ervaring", "fysiek werk", "handmatig", "tijdelijk",
			"uitzendkracht", "seizoenswerk",
			"bez doświadczenia", "praca fizyczna", "fizyczny", "tymczasowy",
			"sezonowy",
			"bez zkušeností", "fyzická práce", "manuální", "dočasný",
			"sezónní", "brigádník",
		},
		deny: []string{
			"manager", "supervisor", "coordinator", "engineer", "technician",
			"team leader", "foreman", "shift leader",
			"leiter", "meister", "vorarbeiter", "techniker", "ingenieur",
			"responsable", "chef équipe", "contremaître", "technicien",
			"capataz", "jefe equipo", "técnico", "ingeniero",
			"responsabile", "capo squadra", "tecnico", "ingegnere",
			"ploegbaas", "voorman", "technicus",
			"kierownik", "brygadzista", "technik", "inżynier",
			"vedoucí", "mistr", "inženýr",
			"specialist", "expert", "skilled", "qualified", "professional",
			"fachkraft", "spezialist", "qualifiziert", "erfahren",
			"spécialiste", "qualifié", "expérimenté",
			"especialista", "cualificado", "experimentado",
			"specialista", "qualificato", "esperto",
			"gekwalificeerd", "ervaren",
			"specjalista", "wykwalifikowany", "doświadczony",
			"kvalifikovaný", "zkušený",
		},
	},
	{
		name: "care-service",
		searches: []string{
			"nurse", "caregiver", "care worker", "cleaner", "housekeeper", "nanny",
			"babysitter", "elderly care", "massage", "gardener",
			"pflege", "krankenschwester", "betreuer", "reinigung", "haushalt",
			"altenpflege", "gärtner",
			"infirmier", "aide", "soignant", "ménage", "nounou", "garde",
			"nettoyage", "jardinier",
		},
		allow: []string{
			"nurse", "nursing", "healthcare", "caregiver", "care worker",
			"support worker", "healthcare assistant", "nursing assistant",
			"elderly care", "senior care", "home care", "personal care",
			"pflege", "pflegekraft", "pflegehelfer", "krankenpflege", "altenpflege",
			"krankenschwester", "gesundheitspflege", "betreuung", "betreuer",
			"seniorenbetreuung", "häusliche pflege", "pflegeassistent",
			"infirmier", "infirmière", "aide soignant", "soins", "assistance",
			"aide à domicile", "auxiliaire vie", "accompagnant", "gériatrie",
			"personnes âgées", "aide familiale",
			"enfermero", "enfermera", "cuidador", "asistencia", "cuidados",
			"auxiliar enfermería", "ayuda domicilio", "geriátrico", "ancianos",
			"infermiere", "infermiera", "badante", "assistenza", "cura",
			"operatore sanitario", "assistente domiciliare", "anziani",
			"verpleegkundige", "verzorgende", "zorgverlener", "thuiszorg",
			"ouderenzorg", "zorgassistent", "persoonlijke verzorging",
			"pielęgniarka", "opiekun", "opiekunka", "opieka", "asystent",
			"opieka domowa", "opieka nad seniorami", "pielęgnacja",
			"zdravotní sestra", "ošetřovatel", "pečovatel", "péče",
			"domácí péče", "péče o seniory",
			"cleaner", "cleaning", "janitor", "housekeeper", "housekeeping",
			"domestic", "facility management", "maintenance", "office cleaning",
			"commercial cleaning", "cleaning operative",
			"reinigung", "reinigungskraft", "putzkraft", "hausmeister",
			"gebäudereinigung", "objektreinigung",
			"haushälterin", "haushaltshilfe", "putzfrau",
			"nettoyage", "agent entretien", "femme ménage", "employé ménage",
			"aide ménagère", "entretien",
			"nettoyeur", "technicien surface",
			"limpieza", "limpiador", "conserje", "empleada limpieza",
			"empleada hogar", "mantenimiento", "servicios generales",
			"pulizie", "addetto pulizie", "operatore ecologico", "domestica",
			"colf", "addetta domestica",
			"schoonmaak", "schoonmaker", "huishoudster", "facility",
			"schoonmaakmedewerker", "huishoudelijke hulp",
			"sprzątanie", "sprzątacz", "sprzątaczka", "konserwator",
			"pracownik sprzątający", "pomoc domowa", "gospodyni",
			"úklid", "uklízečka", "údržbář", "úklidová služba",
			"domácí pomocnice", "hospodyně",
			"nanny", "babysitter", "childcare", "childminder", "au pair",
			"nursery", "kindergarten", "daycare", "family support",
			"kindermädchen", "kinderbetreuung", "kita", "tagesmutter", "familienhelfer",
			"nounou", "garde enfants", "assistante maternelle",
			"crèche", "garderie", "puéricultrice",
			"niñera", "cuidadora niños", "guardería",
			"educadora infantil", "canguro",
			"tata", "educatrice", "asilo", "assistente infanzia",
			"kinderopvang", "oppas", "kinderdagverblijf",
			"pedagogisch medewerker",
			"opiekunka dzieci", "niania", "żłobek", "przedszkole",
			"wychowawca",
			"chůva", "jesle", "školka", "vychovatelka",
			"gardener", "landscaper", "groundskeeper", "horticulture",
			"garden maintenance", "lawn care", "tree surgery",
			"gärtner", "landschaftsgärtner", "gartenpflege", "gartenbau",
			"grünpflege", "landschaftspflege", "baumpflege",
			"jardinier", "paysagiste", "espaces verts",
			"entretien jardins", "élagage",
			"jardinero", "paisajista", "jardinería", "mantenimiento jardines",
			"espacios verdes",
			"giardiniere", "paesaggista", "giardinaggio", "manutenzione verde",
			"cura giardini",
			"tuinman", "hovenier", "groenvoorziening", "tuinonderhoud",
			"landschapsarchitect",
			"ogrodnik", "architekt krajobrazu", "zieleń", "pielęgnacja ogrodów",
			"zahradník", "krajinář", "údržba zeleně", "zahradnictví",
			"massage", "masseur", "masseuse", "therapist", "spa", "wellness",
			"beauty", "physiotherapy", "relaxation",
			"physiotherapie", "entspannung", "kosmetik",
			"kinésithérapie", "bien-être", "détente", "beauté", "esthétique",
		},
		deny: []string{
			"manager", "director", "coordinator", "supervisor", "head",
			"chief nurse", "senior nurse", "nurse manager",
			"facility manager", "cleaning supervisor",
			"head gardener", "landscape architect",
		},
	},
	{
		name: "it",
		searches: []string{
			"python", "developer", "programmer", "software", "web", "frontend",
			"backend", "fullstack", "qa", "tester", "analyst", "admin",
			"entwickler", "programmierer", "développeur", "desarrollador",
			"sviluppatore", "ontwikkelaar", "programista", "vývojář",
		},
		allow: []string{
			"developer", "programmer", "engineer", "software", "web", "mobile",
			"python", "java", "javascript", "react", "node", "angular",
			"frontend", "backend", "fullstack", "qa", "tester", "devops",
			"analyst", "data", "admin", "administrator", "sysadmin",
			"entwickler", "programmierer", "it",
			"informatik", "system", "daten", "qualitätssicherung",
			"développeur", "programmeur", "informatique", "logiciel",
			"système", "données", "qualité",
		},
		deny: []string{
			"sales", "marketing", "recruiter", "hr", "business development",
			"account manager", "consultant", "trainer",
		},
	},
	{
		name: "office",
		searches: []string{
			"manager", "administrator", "coordinator", "analyst", "assistant",
			"leiter", "verwaltung", "koordinator", "responsable", "administrateur",
			"gerente", "administrador", "responsabile", "kierownik",
			"vedoucí", "administrátor",
		},
		allow: []string{
			"manager", "administrator", "coordinator", "analyst", "assistant",
			"office", "administration", "management", "business", "operations",
			"leiter", "koordinator", "sachbearbeiter",
			"verwaltung", "büro", "geschäftsführung", "assistenz",
		},
		deny: []string{
			"software engineer", "technical manager", "it administrator",
			"sales manager", "account manager",
		},
	},
}
