package i18n

// translations maps key → language code → format string.
// Format verbs follow fmt.Sprintf conventions.
//
// Supported languages: pt (Portuguese), en (English), es (Spanish),
// fr (French), de (German), it (Italian).
var translations = map[string]map[string]string{

	// ─── Navigation ──────────────────────────────────────────────────────────
	"site.select_language": {
		"pt": "Selecione o idioma",
		"en": "Select language",
		"es": "Seleccione el idioma",
		"fr": "Sélectionner la langue",
		"de": "Sprache auswählen",
		"it": "Seleziona la lingua",
	},
	"nav.home": {
		"pt": "Home",
		"en": "Home",
		"es": "Inicio",
		"fr": "Accueil",
		"de": "Startseite",
		"it": "Home",
	},
	"nav.about": {
		"pt": "Sobre Mim",
		"en": "About Me",
		"es": "Sobre Mí",
		"fr": "À Propos",
		"de": "Über Mich",
		"it": "Chi Sono",
	},
	"nav.contact": {
		"pt": "Contato",
		"en": "Contact",
		"es": "Contacto",
		"fr": "Contact",
		"de": "Kontakt",
		"it": "Contatti",
	},
	"nav.broker_area": {
		"pt": "Área do Corretor",
		"en": "Broker's Area",
		"es": "Área del Corredor",
		"fr": "Espace Courtier",
		"de": "Maklerbereich",
		"it": "Area Agente",
	},
	// %d = visit count
	"site.visits": {
		"pt": "Visitas: %d",
		"en": "Visits: %d",
		"es": "Visitas: %d",
		"fr": "Visites : %d",
		"de": "Besuche: %d",
		"it": "Visite: %d",
	},

	// ─── Hero ────────────────────────────────────────────────────────────────
	"hero.title": {
		"pt": "O sonho da casa própria nunca foi tão fácil de realizar!",
		"en": "The dream of owning a home has never been easier to achieve!",
		"es": "¡El sueño de la casa propia nunca ha sido tan fácil de realizar!",
		"fr": "Le rêve de devenir propriétaire n'a jamais été aussi facile à réaliser !",
		"de": "Der Traum vom Eigenheim war noch nie so einfach zu verwirklichen!",
		"it": "Il sogno di una casa di proprietà non è mai stato così facile da realizzare!",
	},
	"hero.subtitle": {
		"pt": "Especialista no programa Minha Casa Minha Vida",
		"en": "Specialist in the 'Minha Casa Minha Vida' program",
		"es": "Especialista en el programa 'Minha Casa Minha Vida'",
		"fr": "Spécialiste du programme 'Minha Casa Minha Vida'",
		"de": "Spezialist für das Programm 'Minha Casa Minha Vida'",
		"it": "Specialista del programma 'Minha Casa Minha Vida'",
	},
	"hero.speak_to_me": {
		"pt": "Fale Comigo",
		"en": "Talk to Me",
		"es": "Hable Conmigo",
		"fr": "Parlez-moi",
		"de": "Sprechen Sie mit mir",
		"it": "Parla con me",
	},

	// ─── Featured carousel ───────────────────────────────────────────────────
	"featured.title": {
		"pt": "Destaques",
		"en": "Highlights",
		"es": "Destacados",
		"fr": "En Vedette",
		"de": "Highlights",
		"it": "In Evidenza",
	},
	"featured.empty_catalog": {
		"pt": "Nenhum imóvel cadastrado ainda. Volte em breve!",
		"en": "No properties listed yet. Please check back later.",
		"es": "No hay propiedades listadas todavía. Por favor, vuelva más tarde.",
		"fr": "Aucune propriété répertoriée pour le moment. Veuillez réessayer plus tard.",
		"de": "Noch keine Immobilien aufgeführt. Bitte versuchen Sie es später erneut.",
		"it": "Nessun immobile ancora elencato. Riprova più tardi.",
	},
	"featured.none": {
		"pt": "Nenhum imóvel em destaque no momento.",
		"en": "No featured properties at the moment.",
		"es": "No hay propiedades destacadas en este momento.",
		"fr": "Aucune propriété en vedette pour le moment.",
		"de": "Momentan keine besonderen Immobilien.",
		"it": "Nessuna proprietà in primo piano al momento.",
	},

	// ─── Filters ─────────────────────────────────────────────────────────────
	"filter.type": {
		"pt": "Tipo",
		"en": "Type",
		"es": "Tipo",
		"fr": "Type",
		"de": "Typ",
		"it": "Tipo",
	},
	"filter.city": {
		"pt": "Cidade",
		"en": "City",
		"es": "Ciudad",
		"fr": "Ville",
		"de": "Stadt",
		"it": "Città",
	},
	"filter.neighborhood": {
		"pt": "Bairro",
		"en": "Neighborhood",
		"es": "Barrio",
		"fr": "Quartier",
		"de": "Viertel",
		"it": "Quartiere",
	},
	"filter.price": {
		"pt": "Preço",
		"en": "Price",
		"es": "Precio",
		"fr": "Prix",
		"de": "Preis",
		"it": "Prezzo",
	},
	"filter.all": {
		"pt": "Todos",
		"en": "All",
		"es": "Todos",
		"fr": "Tous",
		"de": "Alle",
		"it": "Tutti",
	},
	"filter.apply": {
		"pt": "Filtrar",
		"en": "Filter",
		"es": "Filtrar",
		"fr": "Filtrer",
		"de": "Filtern",
		"it": "Filtra",
	},
	"filter.clear": {
		"pt": "Limpar filtros",
		"en": "Clear filters",
		"es": "Limpiar filtros",
		"fr": "Effacer les filtres",
		"de": "Filter zurücksetzen",
		"it": "Cancella filtri",
	},
	// %s = lower bound
	"filter.price_from": {
		"pt": "Acima de %s",
		"en": "Over %s",
		"es": "Más de %s",
		"fr": "Plus de %s",
		"de": "Über %s",
		"it": "Oltre %s",
	},
	// %s = upper bound
	"filter.price_up_to": {
		"pt": "Até %s",
		"en": "Up to %s",
		"es": "Hasta %s",
		"fr": "Jusqu'à %s",
		"de": "Bis %s",
		"it": "Fino a %s",
	},

	// ─── Property card ───────────────────────────────────────────────────────
	"category.venda": {
		"pt": "Venda",
		"en": "For sale",
		"es": "Venta",
		"fr": "À vendre",
		"de": "Zu verkaufen",
		"it": "In vendita",
	},
	"category.aluguel": {
		"pt": "Aluguel",
		"en": "For rent",
		"es": "Alquiler",
		"fr": "À louer",
		"de": "Zu vermieten",
		"it": "In affitto",
	},
	// %d = count
	"property.bedrooms": {
		"pt": "%d quartos",
		"en": "%d bedrooms",
		"es": "%d habitaciones",
		"fr": "%d chambres",
		"de": "%d Schlafzimmer",
		"it": "%d camere",
	},
	// %d = count
	"property.bathrooms": {
		"pt": "%d banheiros",
		"en": "%d bathrooms",
		"es": "%d baños",
		"fr": "%d salles de bain",
		"de": "%d Badezimmer",
		"it": "%d bagni",
	},
	// %s = formatted area
	"property.area": {
		"pt": "%s m²",
		"en": "%s m²",
		"es": "%s m²",
		"fr": "%s m²",
		"de": "%s m²",
		"it": "%s m²",
	},
	"property.interested": {
		"pt": "Tenho interesse",
		"en": "I'm interested",
		"es": "Me interesa",
		"fr": "Je suis intéressé",
		"de": "Ich bin interessiert",
		"it": "Sono interessato",
	},

	// ─── About ───────────────────────────────────────────────────────────────
	// %s = broker name
	"about.text1": {
		"pt": "Sou %s, corretor de imóveis atuante na região da Grande São Paulo e ABC. Minha missão é facilitar a realização do sonho da casa própria para meus clientes, com um atendimento personalizado e diferenciado.",
		"en": "I am %s, a real estate agent in the Greater São Paulo and ABC region. My mission is to make the dream of homeownership a reality for my clients with personalized service.",
		"es": "Soy %s, agente inmobiliario en la región de Gran São Paulo y ABC. Mi misión es facilitar el sueño de la casa propia a mis clientes, con un servicio personalizado y diferenciado.",
		"fr": "Je suis %s, agent immobilier dans la région du Grand São Paulo et ABC. Ma mission est de faciliter le rêve de devenir propriétaire pour mes clients, avec un service personnalisé et différencié.",
		"de": "Ich bin %s, Immobilienmakler in der Region Greater São Paulo und ABC. Meine Mission ist es, meinen Kunden den Traum vom Eigenheim mit persönlichem Service zu ermöglichen.",
		"it": "Sono %s, agente immobiliare nella regione della Grande San Paolo e ABC. La mia missione è realizzare il sogno della casa di proprietà per i miei clienti con un servizio personalizzato.",
	},
	"about.text2": {
		"pt": "Meu diferencial está na consultoria completa que ofereço, sempre pronto para responder dúvidas e auxiliar em todas as etapas do processo de compra, venda ou locação de imóveis.",
		"en": "My specialty is the complete consulting I offer, always ready to answer questions and assist in all stages of buying, selling, or renting properties.",
		"es": "Mi diferencial es la consultoría completa que ofrezco, siempre listo para responder dudas y ayudar en todas las etapas del proceso de compra, venta o alquiler de inmuebles.",
		"fr": "Ma spécialité est le conseil complet que j'offre, toujours prêt à répondre aux questions et à aider à toutes les étapes du processus d'achat, de vente ou de location.",
		"de": "Meine Spezialität ist die umfassende Beratung, die ich anbiete. Ich bin immer bereit, Fragen zu beantworten und in allen Phasen des Kaufs, Verkaufs oder der Vermietung zu unterstützen.",
		"it": "La mia specialità è la consulenza completa che offro, sempre pronto a rispondere a domande e assistere in tutte le fasi di acquisto, vendita o affitto di immobili.",
	},
	"about.text3": {
		"pt": "Acredito que cada cliente é único, por isso trabalho para entender suas necessidades específicas e oferecer as melhores condições para que possam realizar o sonho de ter uma casa que possam chamar de 'sua'.",
		"en": "I believe every client is unique, so I work to understand their specific needs and offer the best conditions for them to achieve the dream of having a home to call their own.",
		"es": "Creo que cada cliente es único, por eso trabajo para entender sus necesidades específicas y ofrecer las mejores condiciones para que puedan realizar el sueño de tener una casa que puedan llamar 'suya'.",
		"fr": "Je crois que chaque client est unique, c'est pourquoi je m'efforce de comprendre leurs besoins spécifiques et d'offrir les meilleures conditions pour qu'ils puissent réaliser le rêve d'avoir une maison bien à eux.",
		"de": "Ich glaube, jeder Kunde ist einzigartig, deshalb arbeite ich daran, seine spezifischen Bedürfnisse zu verstehen und die besten Bedingungen zu bieten, damit sie den Traum von einem eigenen Zuhause verwirklichen können.",
		"it": "Credo che ogni cliente sia unico, quindi lavoro per capire le loro esigenze specifiche e offrire le migliori condizioni affinché possano realizzare il sogno di avere una casa da chiamare propria.",
	},
	"about.text4": {
		"pt": "Com conhecimento do mercado local e dedicação ao atendimento, meu compromisso é proporcionar uma experiência tranquila e segura em todos os aspectos da negociação imobiliária.",
		"en": "With local market knowledge and dedication, my commitment is to provide a smooth and secure experience in all aspects of real estate negotiation.",
		"es": "Con conocimiento del mercado local y dedicación al servicio, mi compromiso es proporcionar una experiencia tranquila y segura en todos los aspectos de la negociación inmobiliaria.",
		"fr": "Avec une connaissance du marché local et un dévouement au service, mon engagement est de fournir une expérience fluide et sécurisée dans tous les aspects de la négociation immobilière.",
		"de": "Mit Kenntnissen des lokalen Marktes und Engagement ist es mein Ziel, eine reibungslose und sichere Erfahrung in allen Aspekten der Immobilienverhandlung zu bieten.",
		"it": "Con la conoscenza del mercato locale e la dedizione, il mio impegno è fornire un'esperienza serena e sicura in tutti gli aspetti della negoziazione immobiliare.",
	},
	"about.why_choose_me": {
		"pt": "Por que escolher meus serviços?",
		"en": "Why Choose My Services?",
		"es": "¿Por qué elegir mis servicios?",
		"fr": "Pourquoi Choisir Mes Services ?",
		"de": "Warum meine Dienste wählen?",
		"it": "Perché Scegliere I Miei Servizi?",
	},
	"about.card1.title": {
		"pt": "Atendimento Personalizado",
		"en": "Personalized Service",
		"es": "Atención Personalizada",
		"fr": "Service Personnalisé",
		"de": "Persönlicher Service",
		"it": "Servizio Personalizzato",
	},
	"about.card1.text": {
		"pt": "Dedico tempo para entender suas necessidades específicas e encontrar o imóvel perfeito para você.",
		"en": "I take the time to understand your specific needs and find the perfect property for you.",
		"es": "Dedico tiempo a entender sus necesidades específicas y encontrar la propiedad perfecta para usted.",
		"fr": "Je prends le temps de comprendre vos besoins spécifiques et de trouver la propriété idéale pour vous.",
		"de": "Ich nehme mir Zeit, Ihre spezifischen Bedürfnisse zu verstehen und die perfekte Immobilie für Sie zu finden.",
		"it": "Dedico tempo a comprendere le tue esigenze specifiche e a trovare l'immobile perfetto per te.",
	},
	"about.card2.title": {
		"pt": "Conhecimento Local",
		"en": "Local Knowledge",
		"es": "Conocimiento Local",
		"fr": "Connaissance Locale",
		"de": "Lokale Kenntnisse",
		"it": "Conoscenza Locale",
	},
	"about.card2.text": {
		"pt": "Amplo conhecimento do mercado imobiliário na região do ABC e Grande São Paulo.",
		"en": "Extensive knowledge of the real estate market in the ABC and Greater São Paulo region.",
		"es": "Amplio conocimiento del mercado inmobiliario en la región del ABC y Gran São Paulo.",
		"fr": "Vaste connaissance du marché immobilier dans la région de l'ABC et du Grand São Paulo.",
		"de": "Umfassende Kenntnisse des Immobilienmarktes in der ABC-Region und im Großraum São Paulo.",
		"it": "Ampia conoscenza del mercato immobiliare nella regione ABC e della Grande San Paolo.",
	},
	"about.card3.title": {
		"pt": "Condições Especiais",
		"en": "Special Conditions",
		"es": "Condiciones Especiales",
		"fr": "Conditions Spéciales",
		"de": "Sonderkonditionen",
		"it": "Condizioni Speciali",
	},
	"about.card3.text": {
		"pt": "Trabalho para oferecer as melhores condições de negociação e financiamento para meus clientes.",
		"en": "I work to offer the best negotiation and financing conditions for my clients.",
		"es": "Trabajo para ofrecer las mejores condiciones de negociación y financiación para mis clientes.",
		"fr": "Je m'efforce d'offrir les meilleures conditions de négociation et de financement à mes clients.",
		"de": "Ich arbeite daran, meinen Kunden die besten Verhandlungs- und Finanzierungsbedingungen zu bieten.",
		"it": "Lavoro per offrire le migliori condizioni di negoziazione e finanziamento ai miei clienti.",
	},
	"about.contact_me": {
		"pt": "Entre em Contato",
		"en": "Get in Touch",
		"es": "Ponerse en Contacto",
		"fr": "Contactez-moi",
		"de": "Kontakt aufnehmen",
		"it": "Contattami",
	},

	// ─── Footer ──────────────────────────────────────────────────────────────
	"footer.contact": {
		"pt": "Contato",
		"en": "Contact",
		"es": "Contacto",
		"fr": "Contact",
		"de": "Kontakt",
		"it": "Contatti",
	},
	"footer.location": {
		"pt": "Localização",
		"en": "Location",
		"es": "Ubicación",
		"fr": "Localisation",
		"de": "Standort",
		"it": "Posizione",
	},
	"footer.whatsapp": {
		"pt": "Fale conosco no WhatsApp",
		"en": "Chat with us on WhatsApp",
		"es": "Hable con nosotros por WhatsApp",
		"fr": "Écrivez-nous sur WhatsApp",
		"de": "Schreiben Sie uns auf WhatsApp",
		"it": "Scrivici su WhatsApp",
	},

	// ─── Contact form ────────────────────────────────────────────────────────
	"lead.name": {
		"pt": "Nome",
		"en": "Name",
		"es": "Nombre",
		"fr": "Nom",
		"de": "Name",
		"it": "Nome",
	},
	"lead.phone": {
		"pt": "Telefone",
		"en": "Phone",
		"es": "Teléfono",
		"fr": "Téléphone",
		"de": "Telefon",
		"it": "Telefono",
	},
	"lead.email": {
		"pt": "E-mail (opcional)",
		"en": "E-mail (optional)",
		"es": "Correo electrónico (opcional)",
		"fr": "E-mail (facultatif)",
		"de": "E-Mail (optional)",
		"it": "E-mail (facoltativo)",
	},
	"lead.message": {
		"pt": "Mensagem",
		"en": "Message",
		"es": "Mensaje",
		"fr": "Message",
		"de": "Nachricht",
		"it": "Messaggio",
	},
	"lead.send": {
		"pt": "Enviar",
		"en": "Send",
		"es": "Enviar",
		"fr": "Envoyer",
		"de": "Senden",
		"it": "Invia",
	},
	"lead.thanks": {
		"pt": "Obrigado! Entrarei em contato em breve.",
		"en": "Thank you! I will get back to you shortly.",
		"es": "¡Gracias! Me pondré en contacto pronto.",
		"fr": "Merci ! Je vous recontacterai rapidement.",
		"de": "Danke! Ich melde mich in Kürze.",
		"it": "Grazie! Ti ricontatterò presto.",
	},
	"lead.name.required": {
		"pt": "Informe seu nome.",
		"en": "Please enter your name.",
		"es": "Indique su nombre.",
		"fr": "Veuillez indiquer votre nom.",
		"de": "Bitte geben Sie Ihren Namen ein.",
		"it": "Inserisci il tuo nome.",
	},
	"lead.phone.invalid": {
		"pt": "Informe um telefone válido com DDD.",
		"en": "Please enter a valid phone number.",
		"es": "Indique un teléfono válido.",
		"fr": "Veuillez indiquer un numéro valide.",
		"de": "Bitte geben Sie eine gültige Telefonnummer ein.",
		"it": "Inserisci un numero di telefono valido.",
	},
	"lead.email.invalid": {
		"pt": "E-mail inválido.",
		"en": "Invalid e-mail address.",
		"es": "Correo electrónico no válido.",
		"fr": "Adresse e-mail invalide.",
		"de": "Ungültige E-Mail-Adresse.",
		"it": "Indirizzo e-mail non valido.",
	},
	"lead.message.required": {
		"pt": "Escreva uma mensagem.",
		"en": "Please write a message.",
		"es": "Escriba un mensaje.",
		"fr": "Veuillez écrire un message.",
		"de": "Bitte schreiben Sie eine Nachricht.",
		"it": "Scrivi un messaggio.",
	},
	// %s = name, %s = phone, %s = message
	"lead.sms": {
		"pt": "Novo contato pelo site: %s (%s): %s",
		"en": "New website lead: %s (%s): %s",
	},
	// %s = property title
	"lead.sms.property": {
		"pt": "Imóvel: %s",
		"en": "Property: %s",
	},

	// ─── Back office ─────────────────────────────────────────────────────────
	"admin.restricted_area": {
		"pt": "Área Restrita",
		"en": "Restricted Area",
	},
	"admin.login_hint": {
		"pt": "Faça login para gerenciar os imóveis.",
		"en": "Sign in to manage listings.",
	},
	"admin.back_to_site": {
		"pt": "Voltar à página inicial",
		"en": "Back to the home page",
	},
	"auth.denied": {
		"pt": "Acesso negado – somente credenciais autorizadas conseguem acessar a página.",
		"en": "Access denied – only authorized credentials can access this page.",
	},
	"auth.error": {
		"pt": "Ocorreu um erro durante o login. Tente novamente.",
		"en": "An error occurred during login. Please try again.",
	},
	"admin.add_property": {
		"pt": "Adicionar Novo Imóvel",
		"en": "Add New Property",
	},
	"admin.edit_property": {
		"pt": "Editar Imóvel",
		"en": "Edit Property",
	},
	"admin.confirm_delete": {
		"pt": "Tem certeza que deseja excluir este imóvel? Esta ação não pode ser desfeita.",
		"en": "Are you sure you want to delete this property? This cannot be undone.",
	},
	"admin.save_error": {
		"pt": "Erro ao salvar imóvel. Tente novamente.",
		"en": "Failed to save the property. Please try again.",
	},
	"admin.delete_error": {
		"pt": "Erro ao excluir imóvel. Tente novamente.",
		"en": "Failed to delete the property. Please try again.",
	},
	"admin.search": {
		"pt": "Buscar por título, cidade ou bairro",
		"en": "Search by title, city or neighborhood",
	},
	"admin.logout": {
		"pt": "Sair",
		"en": "Log out",
	},
	"admin.dashboard": {
		"pt": "Painel de Imóveis",
		"en": "Listings Dashboard",
	},
	"admin.all_states": {
		"pt": "Todos os estados",
		"en": "All states",
	},
	"admin.properties_count": {
		"pt": "%d imóveis",
		"en": "%d listings",
	},
	"admin.no_properties": {
		"pt": "Nenhum imóvel encontrado.",
		"en": "No listings found.",
	},
	"admin.save": {
		"pt": "Salvar",
		"en": "Save",
	},
	"admin.cancel": {
		"pt": "Cancelar",
		"en": "Cancel",
	},
	"admin.edit": {
		"pt": "Editar",
		"en": "Edit",
	},
	"admin.delete": {
		"pt": "Excluir",
		"en": "Delete",
	},
	"admin.featured": {
		"pt": "Destaque",
		"en": "Featured",
	},
	"admin.photos": {
		"pt": "Fotos (até %d)",
		"en": "Photos (up to %d)",
	},
	"admin.main_photo": {
		"pt": "Foto principal",
		"en": "Main photo",
	},
	"admin.remove_photo": {
		"pt": "Remover",
		"en": "Remove",
	},
	"admin.dev_login": {
		"pt": "Entrar (modo desenvolvimento)",
		"en": "Sign in (development mode)",
	},
	"admin.previous": {
		"pt": "Anterior",
		"en": "Previous",
	},
	"admin.next": {
		"pt": "Próxima",
		"en": "Next",
	},
	"field.title": {
		"pt": "Título",
		"en": "Title",
	},
	"field.description": {
		"pt": "Descrição",
		"en": "Description",
	},
	"field.type": {
		"pt": "Tipo",
		"en": "Type",
	},
	"field.category": {
		"pt": "Categoria",
		"en": "Category",
	},
	"field.price": {
		"pt": "Preço (R$)",
		"en": "Price (R$)",
	},
	"field.neighborhood": {
		"pt": "Bairro",
		"en": "Neighborhood",
	},
	"field.city": {
		"pt": "Cidade",
		"en": "City",
	},
	"field.state": {
		"pt": "Estado",
		"en": "State",
	},
	"field.bedrooms": {
		"pt": "Quartos",
		"en": "Bedrooms",
	},
	"field.bathrooms": {
		"pt": "Banheiros",
		"en": "Bathrooms",
	},
	"field.area": {
		"pt": "Área (m²)",
		"en": "Area (m²)",
	},

	// ─── Property form validation ────────────────────────────────────────────
	"form.title.required": {
		"pt": "O título é obrigatório.",
		"en": "Title is required.",
	},
	"form.description.required": {
		"pt": "A descrição é obrigatória.",
		"en": "Description is required.",
	},
	"form.type.required": {
		"pt": "O tipo de imóvel é obrigatório.",
		"en": "Property type is required.",
	},
	"form.neighborhood.required": {
		"pt": "O bairro é obrigatório.",
		"en": "Neighborhood is required.",
	},
	"form.city.required": {
		"pt": "A cidade é obrigatória.",
		"en": "City is required.",
	},
	"form.state.required": {
		"pt": "O estado é obrigatório.",
		"en": "State is required.",
	},
	"form.state.invalid": {
		"pt": "Estado inválido.",
		"en": "Invalid state.",
	},
	"form.category.invalid": {
		"pt": "A categoria deve ser venda ou aluguel.",
		"en": "Category must be venda or aluguel.",
	},
	"form.price.positive": {
		"pt": "O valor é obrigatório e deve ser maior que zero.",
		"en": "Price is required and must be greater than zero.",
	},
	"form.area.positive": {
		"pt": "A área é obrigatória e deve ser maior que zero.",
		"en": "Area is required and must be greater than zero.",
	},
	"form.price.too_large": {
		"pt": "O valor deve ser menor que R$ 1 trilhão.",
		"en": "Price must be below R$ 1 trillion.",
	},
	"form.area.too_large": {
		"pt": "A área deve ser menor que 100 milhões de m².",
		"en": "Area must be below 100 million m².",
	},
	"form.bedrooms.too_large": {
		"pt": "O nº de quartos é grande demais.",
		"en": "Bedrooms is too large.",
	},
	"form.bathrooms.too_large": {
		"pt": "O nº de banheiros é grande demais.",
		"en": "Bathrooms is too large.",
	},
	"form.bedrooms.integer": {
		"pt": "O nº de quartos deve ser um inteiro (0 ou mais).",
		"en": "Bedrooms must be a whole number (0 or more).",
	},
	"form.bathrooms.integer": {
		"pt": "O nº de banheiros deve ser um inteiro (0 ou mais).",
		"en": "Bathrooms must be a whole number (0 or more).",
	},
	"form.images.required": {
		"pt": "É necessário enviar pelo menos uma foto.",
		"en": "At least one photo is required.",
	},
	// %d = max photos
	"form.images.too_many": {
		"pt": "Você pode enviar no máximo %d fotos.",
		"en": "You can upload at most %d photos.",
	},
	"form.images.upload_failed": {
		"pt": "Erro ao carregar imagens.",
		"en": "Failed to load images.",
	},
}
