package taxonomy

// Category display names. The catalog is aimed at Ukrainian-speaking users,
// so categories and profession names stay in their source language.
const (
	CategoryTransport    = "🚗 ТРАНСПОРТ И ДОСТАВКА"
	CategoryConstruction = "🏗️ СТРОИТЕЛЬСТВО И ПРОИЗВОДСТВО"
	CategoryCatering     = "🍽️ ОБЩЕПИТ И СЕРВИС"
	CategoryService      = "🏡 СЕРВИС И ОБСЛУЖИВАНИЕ"
	CategoryCare         = "👥 УХОД И МЕДИЦИНА"
	CategoryIT           = "💻 IT И ТЕХНОЛОГИИ"
	CategoryOffice       = "👔 ОФИС И УПРАВЛЕНИЕ"
	CategoryRefugee      = "🇺🇦 ДЛЯ УКРАИНСКИХ БЕЖЕНЦЕВ"
)

// Professions is the static catalog. Term lists are dense blocks of three
// per language in the Language tag order (english, german, french, spanish,
// italian, dutch, polish, czech).
var Professions = []Profession{
	{CategoryTransport, "Водитель такси", []string{
		"taxi driver", "cab driver", "uber driver",
		"taxifahrer", "taxi fahrer", "fahrdienst",
		"chauffeur de taxi", "conducteur de taxi", "vtc",
		"conductor de taxi", "taxista", "conductor vtc",
		"tassista", "autista taxi", "conducente taxi",
		"taxichauffeur", "taxi bestuurder", "uber chauffeur",
		"taksówkarz", "kierowca taxi", "przewoźnik",
		"taxikář", "řidič taxi", "dopravce",
	}},
	{CategoryTransport, "Водитель категории B", []string{
		"car driver", "personal driver", "chauffeur",
		"pkw fahrer", "autofahrer", "fahrdienst fahrer",
		"conducteur", "chauffeur particulier", "conducteur vpn",
		"conductor", "chofer personal", "conductor particular",
		"autista", "conducente", "autista personale",
		"automobilist", "chauffeur", "bestuurder",
		"kierowca", "szofer", "kierowca osobowy",
		"řidič", "šofér", "osobní řidič",
	}},
	{CategoryTransport, "Водитель категории C", []string{
		"truck driver", "HGV driver", "lorry driver",
		"lkw fahrer", "fernfahrer", "kraftfahrer",
		"conducteur poids lourd", "chauffeur pl", "routier",
		"conductor camión", "camionero", "transportista",
		"camionista", "autista camion", "trasportatore",
		"vrachtwagenchauffeur", "trucker", "transporteur",
		"kierowca ciężarówki", "kierowca tir", "przewoźnik",
		"řidič nákladního", "kamionář", "dopravce",
	}},
	{CategoryTransport, "Водитель-курьер", []string{
		"delivery driver", "courier driver", "van driver",
		"lieferfahrer", "kurier fahrer", "paket fahrer",
		"chauffeur-livreur", "conducteur livreur", "livreur auto",
		"conductor reparto", "repartidor auto", "mensajero auto",
		"autista consegne", "conducente corriere", "fattorino auto",
		"bezorgchauffeur", "koerier bestuurder", "pakket chauffeur",
		"kierowca kurierski", "dostawca", "kierowca dostawczy",
		"řidič kurýr", "rozvozce", "doručovatel",
	}},
	{CategoryTransport, "Курьер пешком", []string{
		"bicycle courier", "bike courier", "foot courier",
		"fahrradkurier", "radkurier", "fußkurier",
		"coursier vélo", "livreur vélo", "messager vélo",
		"mensajero bicicleta", "repartidor bici", "ciclomensajero",
		"fattorino bici", "corriere bici", "rider",
		"fietskoerier", "fietsbezorger", "rijder",
		"kurier rowerowy", "rowerzysta", "dostawca rower",
		"cyklo kurýr", "jízdní kurýr", "cyklista",
	}},
	{CategoryTransport, "Курьер-доставщик еды", []string{
		"food delivery driver", "uber eats driver", "deliveroo rider",
		"essenslieferant", "lieferando fahrer", "food kurier",
		"livreur repas", "uber eats", "deliveroo livreur",
		"repartidor comida", "glovo repartidor", "uber eats",
		"rider cibo", "glovo rider", "fattorino food",
		"maaltijdbezorger", "uber eats", "thuisbezorgd",
		"dostawa jedzenia", "uber eats", "glovo kurier",
		"rozvoz jídla", "uber eats", "bolt food",
	}},
	{CategoryTransport, "Водитель автобуса", []string{
		"bus driver", "coach driver", "transit driver",
		"busfahrer", "omnibusfahrer", "nahverkehr fahrer",
		"conducteur bus", "chauffeur autobus", "machiniste",
		"conductor autobús", "chofer bus", "conductor transporte",
		"autista autobus", "conducente bus", "autista mezzi",
		"buschauffeur", "ov chauffeur", "bestuurder bus",
		"kierowca autobusu", "motorniczej", "przewoźnik",
		"řidič autobusu", "autobusák", "dopravce",
	}},
	{CategoryTransport, "Водитель грузовика", []string{
		"truck driver", "freight driver", "haulage driver",
		"lkw fahrer", "speditionsfahrer", "transportfahrer",
		"conducteur camion", "transporteur", "livreur camion",
		"camionero", "conductor transporte", "operador logístico",
		"camionista", "autotrasportatore", "operatore logistico",
		"vrachtwagenchauffeur", "logistiek chauffeur", "transport",
		"kierowca ciężarowy", "spedytor", "logistyk",
		"řidič nákladní", "spedice řidič", "logistik",
	}},

	{CategoryConstruction, "Строитель-разнорабочий", []string{
		"construction worker", "builder", "construction labourer",
		"bauarbeiter", "handwerker", "bauhilfsarbeiter",
		"ouvrier bâtiment", "manoeuvre", "ouvrier construction",
		"obrero construcción", "peón", "albañil ayudante",
		"operaio edile", "manovale", "operaio cantiere",
		"bouwvakker", "grondwerker", "bouw medewerker",
		"robotnik budowlany", "pracownik budowy", "pomocnik",
		"stavební dělník", "pracovník stavby", "pomocník",
	}},
	{CategoryConstruction, "Грузчик", []string{
		"warehouse worker", "loader", "packer",
		"lagerarbeiter", "kommissionierer", "packer",
		"manutentionnaire", "préparateur commandes", "magasinier",
		"operario almacén", "mozo", "preparador pedidos",
		"magazziniere", "addetto picking", "operatore",
		"magazijnmedewerker", "orderpicker", "lader",
		"magazynier", "pakowacz", "pracownik magazynu",
		"skladník", "balič", "pracovník skladu",
	}},
	{CategoryConstruction, "Складской работник", []string{
		"warehouse operative", "stock handler", "logistics worker",
		"lagermitarbeiter", "logistikmitarbeiter", "lagerist",
		"agent logistique", "employé entrepôt", "gestionnaire stock",
		"operario logística", "empleado almacén", "gestor stock",
		"addetto logistica", "operatore magazzino", "addetto stock",
		"logistiek medewerker", "voorraad beheerder", "warehouse",
		"logistyk", "pracownik logistyczny", "operator magazynu",
		"logistik", "skladový pracovník", "operátor skladu",
	}},
	{CategoryConstruction, "Разнорабочий", []string{
		"general worker", "manual worker", "helper",
		"hilfsarbeiter", "allrounder", "arbeiter",
		"ouvrier polyvalent", "manoeuvre", "aide général",
		"peón general", "auxiliar", "trabajador manual",
		"operaio generico", "tuttofare", "ausiliario",
		"algemeen medewerker", "handwerker", "hulpkracht",
		"robotnik", "pracownik fizyczny", "pomocnik",
		"dělník", "pomocný pracovník", "manuální pracovník",
	}},
	{CategoryConstruction, "Рабочий на производстве", []string{
		"factory worker", "production worker", "manufacturing operative",
		"produktionsmitarbeiter", "fabrikarbeiter", "fertigungsmitarbeiter",
		"ouvrier production", "opérateur machine", "agent fabrication",
		"operario producción", "trabajador fábrica", "operador máquina",
		"operaio produzione", "addetto produzione", "operatore macchine",
		"productiemedewerker", "fabriekarbeider", "machine operator",
		"robotnik produkcyjny", "operator maszyn", "pracownik fabryki",
		"výrobní dělník", "operátor strojů", "tovární dělník",
	}},

	{CategoryCatering, "Официант", []string{
		"waiter", "waitress", "server",
		"kellner", "kellnerin", "bedienung",
		"serveur", "serveuse", "garçon de café",
		"camarero", "camarera", "mesero",
		"cameriere", "cameriera", "addetto sala",
		"ober", "serveerster", "bediening",
		"kelner", "kelnerka", "obsługa",
		"číšník", "číšnice", "obsluha",
	}},
	{CategoryCatering, "Бармен", []string{
		"bartender", "barman", "mixologist",
		"barkeeper", "barmann", "barmixer",
		"barman", "barmaid", "mixologue",
		"barman", "cantinero", "coctelero",
		"barista", "barman", "addetto bar",
		"barkeeper", "barman", "bartender",
		"barman", "barista", "obsługa baru",
		"barman", "barmanka", "obsluha baru",
	}},
	{CategoryCatering, "Повар", []string{
		"chef", "cook", "kitchen chef",
		"koch", "küchenchef", "chefkoch",
		"cuisinier", "chef cuisinier", "commis cuisine",
		"cocinero", "chef", "cocinero jefe",
		"cuoco", "chef", "addetto cucina",
		"kok", "chef-kok", "keukenhulp",
		"kucharz", "szef kuchni", "pracownik kuchni",
		"kuchař", "šéfkuchař", "kuchařka",
	}},
	{CategoryCatering, "Помощник повара", []string{
		"kitchen assistant", "commis chef", "prep cook",
		"küchenhilfe", "küchengehilfe", "hilfskoch",
		"aide cuisinier", "commis cuisine", "assistant cuisine",
		"ayudante cocina", "auxiliar cocina", "pinche",
		"aiuto cuoco", "commis", "assistente cucina",
		"keukenhulp", "kok assistent", "keuken medewerker",
		"pomoc kuchenna", "pomocnik kucharza", "kucharz pomocniczy",
		"kuchařka pomocná", "pomocník kuchaře", "kuchyňský pomocník",
	}},
	{CategoryCatering, "Посудомойщик", []string{
		"dishwasher", "kitchen porter", "pot washer",
		"spüler", "abwäscher", "geschirrspüler",
		"plongeur", "laveur vaisselle", "aide plonge",
		"friegaplatos", "lavavajillas", "ayudante cocina",
		"lavapiatti", "sguattero", "addetto pulizie",
		"afwasser", "spoeler", "keuken hulp",
		"zmywacz", "pomywacz", "pracownik kuchni",
		"umývač nádoba", "pomocník kuchyně", "dishwasher",
	}},
	{CategoryCatering, "Кассир", []string{
		"cashier", "till operator", "checkout operator",
		"kassierer", "kassiererin", "kasse",
		"caissier", "caissière", "hôtesse caisse",
		"cajero", "cajera", "operador caja",
		"cassiere", "cassiera", "addetto cassa",
		"kassière", "kassamedewerker", "caissier",
		"kasjer", "kasjerka", "obsługa kasy",
		"pokladník", "pokladní", "obsluha pokladny",
	}},
	{CategoryCatering, "Продавец", []string{
		"shop assistant", "sales assistant", "retail assistant",
		"verkäufer", "verkäuferin", "einzelhandel",
		"vendeur", "vendeuse", "conseiller vente",
		"vendedor", "dependiente", "auxiliar ventas",
		"commesso", "commessa", "addetto vendite",
		"verkoper", "winkelmedewerker", "verkoopster",
		"sprzedawca", "sprzedawczyni", "konsultant",
		"prodavač", "prodavačka", "obsluha",
	}},

	{CategoryService, "Уборщик", []string{
		"cleaner", "janitor", "cleaning operative",
		"reinigungskraft", "putzkraft", "hausmeister",
		"agent entretien", "femme ménage", "nettoyeur",
		"limpiador", "conserje", "empleada limpieza",
		"addetto pulizie", "operatore ecologico", "pulitore",
		"schoonmaker", "huishoudelijke hulp", "cleaner",
		"sprzątacz", "sprzątaczka", "pracownik sprzątający",
		"uklízečka", "údržbář", "čistič",
	}},
	{CategoryService, "Садовник", []string{
		"gardener", "landscaper", "groundskeeper",
		"gärtner", "landschaftsgärtner", "gartenpfleger",
		"jardinier", "paysagiste", "espaces verts",
		"jardinero", "paisajista", "jardinero mantenimiento",
		"giardiniere", "paesaggista", "manutentore verde",
		"tuinman", "hovenier", "groenvoorziening",
		"ogrodnik", "architekt krajobrazu", "pracownik zieleni",
		"zahradník", "krajinář", "údržba zeleně",
	}},
	{CategoryService, "Домработница", []string{
		"housekeeper", "domestic worker", "home help",
		"haushälterin", "haushaltshilfe", "putzfrau",
		"femme ménage", "aide ménagère", "employée maison",
		"empleada doméstica", "asistenta hogar", "limpiadora",
		"domestica", "colf", "addetta domestica",
		"huishoudster", "huishoudelijke hulp", "inwonende hulp",
		"gospodyni", "pomoc domowa", "sprzątaczka domowa",
		"hospodyně", "domácí pomocnice", "uklízečka",
	}},
	{CategoryService, "Массажист", []string{
		"massage therapist", "masseur", "physiotherapist",
		"masseur", "physiotherapeut", "wellness therapeut",
		"masseur", "kinésithérapeute", "thérapeute",
		"masajista", "fisioterapeuta", "terapeuta",
		"massaggiatore", "fisioterapista", "operatore wellness",
		"masseur", "fysiotherapeut", "wellness therapeut",
		"masażysta", "fizjoterapeuta", "terapeuta",
		"masér", "fyzioterapeut", "wellness terapeut",
	}},

	{CategoryCare, "Медсестра", []string{
		"nurse", "healthcare assistant", "nursing assistant",
		"krankenschwester", "pflegekraft", "gesundheitspfleger",
		"infirmier", "infirmière", "aide soignant",
		"enfermero", "enfermera", "auxiliar enfermería",
		"infermiere", "infermiera", "operatore sanitario",
		"verpleegkundige", "zorgverlener", "nurse",
		"pielęgniarka", "opiekun medyczny", "asystent pielęgniarki",
		"zdravotní sestra", "ošetřovatel", "zdravotník",
	}},
	{CategoryCare, "Сиделка", []string{
		"caregiver", "care worker", "support worker",
		"betreuer", "altenpfleger", "pflegehelfer",
		"aide à domicile", "auxiliaire vie", "accompagnant",
		"cuidador", "auxiliar ayuda domicilio", "asistente personal",
		"badante", "assistente domiciliare", "operatore socio",
		"verzorgende", "thuiszorg", "zorgverlener",
		"opiekun", "opiekunka", "asystent osoby",
		"pečovatel", "ošetřovatel", "asistent",
	}},
	{CategoryCare, "Няня", []string{
		"nanny", "babysitter", "childcare worker",
		"kindermädchen", "babysitter", "kinderbetreuung",
		"nounou", "garde enfants", "assistante maternelle",
		"niñera", "cuidadora niños", "educadora infantil",
		"babysitter", "tata", "educatrice",
		"kinderopvang", "babysit", "oppas",
		"opiekunka dzieci", "niania", "wychowawca",
		"chůva", "babysitter", "pečovatelka",
	}},
	{CategoryCare, "Гувернантка", []string{
		"governess", "au pair", "childminder",
		"gouvernante", "au pair", "erzieherin",
		"gouvernante", "au pair", "préceptrice",
		"institutriz", "au pair", "cuidadora interna",
		"governante", "au pair", "istitutrice",
		"gouvernante", "au pair", "kindjuf",
		"guwernantka", "au pair", "opiekunka",
		"vychovatelka", "au pair", "guvernantka",
	}},
	{CategoryCare, "Уход за пенсионерами", []string{
		"elderly care", "senior care", "care home worker",
		"altenpflege", "seniorenbetreuung", "altenheim",
		"aide personnes âgées", "gériatrie", "ehpad",
		"cuidado ancianos", "geriátrico", "residencia mayores",
		"assistenza anziani", "casa riposo", "operatore geriatrico",
		"ouderenzorg", "bejaardenzorg", "verzorgingshuis",
		"opieka nad seniorami", "dom opieki", "geriatria",
		"péče o seniory", "domov důchodců", "geriatrie",
	}},

	{CategoryIT, "Python разработчик", []string{
		"python developer", "python programmer", "python engineer",
		"python entwickler", "python programmierer", "software entwickler python",
		"développeur python", "programmeur python", "ingénieur python",
		"desarrollador python", "programador python", "ingeniero python",
		"sviluppatore python", "programmatore python", "python developer",
		"python ontwikkelaar", "python programmeur", "software developer",
		"programista python", "developer python", "inżynier python",
		"python vývojář", "python programátor", "software developer",
	}},
	{CategoryIT, "Веб-разработчик", []string{
		"web developer", "frontend developer", "full stack developer",
		"webentwickler", "frontend entwickler", "web programmierer",
		"développeur web", "développeur frontend", "programmeur web",
		"desarrollador web", "frontend developer", "programador web",
		"sviluppatore web", "web developer", "programmatore web",
		"web ontwikkelaar", "frontend developer", "webprogrammeur",
		"programista web", "frontend developer", "web developer",
		"web vývojář", "frontend developer", "webový programátor",
	}},
	{CategoryIT, "Программист", []string{
		"software developer", "programmer", "software engineer",
		"software entwickler", "programmierer", "informatiker",
		"développeur logiciel", "programmeur", "ingénieur logiciel",
		"desarrollador software", "programador", "ingeniero software",
		"sviluppatore software", "programmatore", "ingegnere software",
		"software ontwikkelaar", "programmeur", "software engineer",
		"programista", "developer", "inżynier oprogramowania",
		"programátor", "vývojář software", "software developer",
	}},
	{CategoryIT, "Дата-аналитик", []string{
		"data analyst", "data scientist", "business analyst",
		"datenanalyst", "data scientist", "business analyst",
		"analyste données", "data scientist", "analyste business",
		"analista datos", "científico datos", "analista negocio",
		"analista dati", "data scientist", "business analyst",
		"data analist", "data scientist", "business analist",
		"analityk danych", "data scientist", "analityk biznesowy",
		"datový analytik", "data scientist", "business analytik",
	}},
	{CategoryIT, "Системный администратор", []string{
		"system administrator", "sysadmin", "IT support",
		"systemadministrator", "it administrator", "system admin",
		"administrateur système", "admin système", "support technique",
		"administrador sistemas", "sysadmin", "soporte técnico",
		"amministratore sistema", "sysadmin", "supporto tecnico",
		"systeembeheerder", "it beheerder", "technisch support",
		"administrator systemu", "sysadmin", "wsparcie techniczne",
		"správce systému", "sysadmin", "technická podpora",
	}},
	{CategoryIT, "Тестировщик", []string{
		"QA engineer", "software tester", "quality assurance",
		"software tester", "qa engineer", "qualitätssicherung",
		"testeur logiciel", "ingénieur qa", "assurance qualité",
		"tester software", "ingeniero qa", "control calidad",
		"tester software", "qa engineer", "controllo qualità",
		"software tester", "qa engineer", "kwaliteitscontrole",
		"tester oprogramowania", "inżynier qa", "kontrola jakości",
		"tester software", "qa inženýr", "kontrola kvality",
	}},

	{CategoryOffice, "Менеджер", []string{
		"manager", "management", "team leader",
		"manager", "teamleiter", "führungskraft",
		"manager", "responsable", "chef équipe",
		"manager", "gerente", "jefe equipo",
		"manager", "responsabile", "capo squadra",
		"manager", "teamleider", "leidinggevende",
		"manager", "kierownik", "lider zespołu",
		"manažer", "vedoucí", "vedoucí týmu",
	}},
	{CategoryOffice, "Администратор", []string{
		"administrator", "admin", "office manager",
		"administrator", "bürokaufmann", "verwaltung",
		"administrateur", "gestionnaire bureau", "secrétaire",
		"administrador", "gestor oficina", "administrativo",
		"amministratore", "impiegato", "segretario",
		"administrateur", "kantoormedewerker", "beheerder",
		"administrator", "pracownik biurowy", "sekretarz",
		"administrátor", "úředník", "sekretář",
	}},
	{CategoryOffice, "Координатор", []string{
		"coordinator", "project coordinator", "team coordinator",
		"koordinator", "projektkoordinator", "sachbearbeiter",
		"coordinateur", "coordinateur projet", "chargé mission",
		"coordinador", "coordinador proyecto", "gestor proyectos",
		"coordinatore", "coordinatore progetto", "responsabile",
		"coördinator", "projectcoördinator", "teamcoördinator",
		"koordynator", "koordynator projektu", "specjalista",
		"koordinátor", "projektový koordinátor", "specialista",
	}},
	{CategoryOffice, "Аналитик", []string{
		"business analyst", "data analyst", "analyst",
		"business analyst", "analyst", "sachbearbeiter",
		"analyste business", "analyste", "chargé études",
		"analista negocio", "analista", "consultor",
		"business analyst", "analista", "consulente",
		"business analist", "analist", "consultant",
		"analityk biznesowy", "analityk", "konsultant",
		"business analytik", "analytik", "konzultant",
	}},

	{CategoryRefugee, "Работа для украинцев", []string{
		"ukrainian speaker", "ukrainian support", "ukraine refugee",
		"ukrainisch sprecher", "ukraine hilfe", "flüchtling",
		"ukrainien locuteur", "aide ukraine", "réfugié",
		"hablante ucraniano", "ayuda ucrania", "refugiado",
		"parlante ucraino", "aiuto ucraina", "profugo",
		"oekraïens spreker", "oekraïne hulp", "vluchteling",
		"mówiący ukraiński", "pomoc ukraina", "uchodźca",
		"ukrajinsky mluvčí", "pomoc ukrajina", "uprchlík",
	}},
	{CategoryRefugee, "Программы поддержки", []string{
		"refugee support", "integration program", "newcomer program",
		"flüchtlingshilfe", "integrationsprogramm", "newcomer",
		"aide réfugiés", "programme intégration", "accueil",
		"ayuda refugiados", "programa integración", "acogida",
		"aiuto profughi", "programma integrazione", "accoglienza",
		"vluchtelingenhulp", "integratieprogramma", "opvang",
		"pomoc uchodźcom", "program integracyjny", "wsparcie",
		"pomoc uprchlíkům", "integrační program", "podpora",
	}},
	{CategoryRefugee, "Переводчик украинского", []string{
		"ukrainian translator", "ukrainian interpreter", "translator",
		"ukrainisch übersetzer", "dolmetscher", "sprachmittler",
		"traducteur ukrainien", "interprète", "traducteur",
		"traductor ucraniano", "intérprete", "traductor",
		"traduttore ucraino", "interprete", "traduttore",
		"oekraïens vertaler", "tolk", "vertaler",
		"tłumacz ukraiński", "tłumacz", "interpreter",
		"ukrajinsky překladatel", "tlumočník", "překladatel",
	}},
	{CategoryRefugee, "Поддержка беженцев", []string{
		"refugee assistance", "asylum support", "humanitarian aid",
		"flüchtlingsbetreuung", "asylhilfe", "humanitäre hilfe",
		"assistance réfugiés", "aide asile", "aide humanitaire",
		"asistencia refugiados", "apoyo asilo", "ayuda humanitaria",
		"assistenza profughi", "supporto asilo", "aiuto umanitario",
		"vluchtelingenopvang", "asielzoekers", "humanitaire hulp",
		"pomoc uchodźcom", "wsparcie azyl", "pomoc humanitarna",
		"pomoc uprchlíkům", "azylová pomoc", "humanitární pomoc",
	}},
	{CategoryRefugee, "Работа без языка для украинцев", []string{
		"no language ukrainian", "physical work ukraine", "manual work",
		"ohne sprache ukraine", "körperliche arbeit", "hilfstätigkeit",
		"sans langue ukraine", "travail physique", "travail manuel",
		"sin idioma ucrania", "trabajo físico", "trabajo manual",
		"senza lingua ucraina", "lavoro fisico", "lavoro manuale",
		"zonder taal oekraïne", "fysiek werk", "handwerk",
		"bez języka ukraina", "praca fizyczna", "praca manualna",
		"bez jazyka ukrajina", "fyzická práce", "manuální práce",
	}},
}
