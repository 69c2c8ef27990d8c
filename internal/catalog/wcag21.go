package catalog

import "github.com/alexanderramin/wcagcheck/internal/domain"

// wcag21 is the WCAG 2.1 success criterion set shipped with the tool.
var wcag21 = []domain.Guideline{
	// Principle 1: Perceivable
	{
		ID:                    "non-text-content",
		RefID:                 "1.1.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Non-text Content", domain.LangNL: "Niet-tekstuele content"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Images, icons, and buttons must have a text description (alt text) so screen readers can explain them.", domain.LangNL: "Afbeeldingen, iconen en knoppen moeten een tekstbeschrijving (alt-tekst) hebben zodat schermlezers ze kunnen uitleggen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "All non-text content that is presented to the user has a text alternative that serves the equivalent purpose.", domain.LangNL: "Alle niet-tekstuele content die aan de gebruiker wordt gepresenteerd, heeft een tekstalternatief dat een gelijkwaardig doel dient."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/non-text-content.html",
	},
	{
		ID:                    "audio-only-and-video-only-prerecorded",
		RefID:                 "1.2.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Audio-only and Video-only (Prerecorded)", domain.LangNL: "Louter-geluid en louter-videobeeld (vooraf opgenomen)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide a transcript for podcasts and a text description or audio track for silent videos.", domain.LangNL: "Zorg voor een transcript bij podcasts en een tekstbeschrijving of audiospoor bij stille video's."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For prerecorded audio-only and prerecorded video-only media, an alternative is provided.", domain.LangNL: "Voor vooraf opgenomen louter-geluid en louter-videobeeld media wordt een alternatief geboden."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/audio-only-and-video-only-prerecorded.html",
	},
	{
		ID:                    "captions-prerecorded",
		RefID:                 "1.2.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Captions (Prerecorded)", domain.LangNL: "Ondertitels (vooraf opgenomen)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Videos with sound must have captions so deaf users can understand what is being said.", domain.LangNL: "Video's met geluid moeten ondertiteling hebben zodat dove gebruikers kunnen begrijpen wat er wordt gezegd."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Captions are provided for all prerecorded audio content in synchronized media.", domain.LangNL: "Er worden ondertitels geleverd voor alle vooraf opgenomen audiocontent in gesynchroniseerde media."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/captions-prerecorded.html",
	},
	{
		ID:                    "audio-description-or-media-alternative-prerecorded",
		RefID:                 "1.2.3",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Audio Description or Media Alternative (Prerecorded)", domain.LangNL: "Audiodescriptie of media-alternatief (vooraf opgenomen)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide a transcript or audio description for videos so blind users know what is happening on screen.", domain.LangNL: "Zorg voor een transcript of audiodescriptie bij video's zodat blinde gebruikers weten wat er op het scherm gebeurt."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "An alternative for time-based media or audio description of the prerecorded video content is provided.", domain.LangNL: "Er wordt een alternatief voor tijdgebaseerde media of audiodescriptie van de vooraf opgenomen videocontent geboden."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/audio-description-or-media-alternative-prerecorded.html",
	},
	{
		ID:                    "captions-live",
		RefID:                 "1.2.4",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Captions (Live)", domain.LangNL: "Ondertitels (live)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Live videos must have real-time captions.", domain.LangNL: "Live video's moeten real-time ondertiteling hebben."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Captions are provided for all live audio content in synchronized media.", domain.LangNL: "Er worden ondertitels geleverd voor alle live audiocontent in gesynchroniseerde media."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/captions-live.html",
	},
	{
		ID:                    "audio-description-prerecorded",
		RefID:                 "1.2.5",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Audio Description (Prerecorded)", domain.LangNL: "Audiodescriptie (vooraf opgenomen)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Add an extra audio track describing important visual details in videos.", domain.LangNL: "Voeg een extra audiospoor toe dat belangrijke visuele details in video's beschrijft."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Audio description is provided for all prerecorded video content in synchronized media.", domain.LangNL: "Er wordt audiodescriptie geleverd voor alle vooraf opgenomen videocontent in gesynchroniseerde media."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/audio-description-prerecorded.html",
	},
	{
		ID:                    "info-and-relationships",
		RefID:                 "1.3.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Info and Relationships", domain.LangNL: "Info en relaties"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Use proper HTML tags like headings (h1-h6), lists, and tables so the structure makes sense without seeing it.", domain.LangNL: "Gebruik juiste HTML-tags zoals koppen (h1-h6), lijsten en tabellen zodat de structuur logisch is zonder deze te zien."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Information, structure, and relationships conveyed through presentation can be programmatically determined or are available in text.", domain.LangNL: "Informatie, structuur en relaties die via presentatie worden overgebracht, kunnen door software worden bepaald of zijn beschikbaar in tekst."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/info-and-relationships.html",
	},
	{
		ID:                    "meaningful-sequence",
		RefID:                 "1.3.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Meaningful Sequence", domain.LangNL: "Betekenisvolle volgorde"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "The order of content in the code must match the visual order so it makes sense when read by a screen reader.", domain.LangNL: "De volgorde van content in de code moet overeenkomen met de visuele volgorde zodat het logisch is voor een schermlezer."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "When the sequence in which content is presented affects its meaning, a correct reading sequence can be programmatically determined.", domain.LangNL: "Wanneer de volgorde waarin content wordt gepresenteerd van invloed is op de betekenis, kan een correcte leesvolgorde door software worden bepaald."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/meaningful-sequence.html",
	},
	{
		ID:                    "sensory-characteristics",
		RefID:                 "1.3.3",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Sensory Characteristics", domain.LangNL: "Zintuiglijke eigenschappen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Don't say \"click the green button\" or \"look at the box on the right\". Use labels like \"click the Start button\".", domain.LangNL: "Zeg niet \"klik op de groene knop\" of \"kijk naar het vak rechts\". Gebruik labels zoals \"klik op de Start-knop\"."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Instructions provided for understanding and operating content do not rely solely on sensory characteristics of components such as shape, color, size, visual location, orientation, or sound.", domain.LangNL: "Instructies voor het begrijpen en bedienen van content zijn niet alleen afhankelijk van zintuiglijke eigenschappen van componenten zoals vorm, kleur, grootte, visuele locatie, oriëntatie of geluid."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/sensory-characteristics.html",
	},
	{
		ID:                    "orientation",
		RefID:                 "1.3.4",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Orientation", domain.LangNL: "Weergavestand"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Your site must work in both portrait (vertical) and landscape (horizontal) modes on phones and tablets.", domain.LangNL: "Je site moet werken in zowel staande (verticale) als liggende (horizontale) modus op telefoons en tablets."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Content does not restrict its view and operation to a single display orientation, such as portrait or landscape, unless a specific display orientation is essential.", domain.LangNL: "Content beperkt de weergave en bediening niet tot één enkele weergavestand, zoals staand of liggend, tenzij een specifieke weergavestand essentieel is."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/orientation.html",
	},
	{
		ID:                    "identify-input-purpose",
		RefID:                 "1.3.5",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Identify Input Purpose", domain.LangNL: "Identificeer het doel van de input"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Use autocomplete attributes on form fields (like autocomplete=\"email\") so browsers can help fill them in.", domain.LangNL: "Gebruik autocomplete-attributen op formuliervelden (zoals autocomplete=\"email\") zodat browsers kunnen helpen bij het invullen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The purpose of each input field collecting information about the user can be programmatically determined.", domain.LangNL: "Het doel van elk invoerveld dat informatie over de gebruiker verzamelt, kan door software worden bepaald."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/identify-input-purpose.html",
	},
	{
		ID:                    "use-of-color",
		RefID:                 "1.4.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Use of Color", domain.LangNL: "Gebruik van kleur"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Don't use color alone to show meaning. Use icons, text, or patterns too. (e.g. Error messages shouldn't just be red text).", domain.LangNL: "Gebruik niet alleen kleur om betekenis te tonen. Gebruik ook iconen, tekst of patronen. (bv. Foutmeldingen mogen niet alleen rode tekst zijn)."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Color is not used as the only visual means of conveying information, indicating an action, prompting a response, or distinguishing a visual element.", domain.LangNL: "Kleur wordt niet gebruikt als het enige visuele middel om informatie over te brengen, een actie aan te geven, om een reactie te vragen of een visueel element te onderscheiden."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/use-of-color.html",
	},
	{
		ID:                    "audio-control",
		RefID:                 "1.4.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Audio Control", domain.LangNL: "Geluidsbediening"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Don't auto-play audio. If you do, give users a way to stop it immediately.", domain.LangNL: "Speel audio niet automatisch af. Als je dat wel doet, geef gebruikers dan een manier om het direct te stoppen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "If any audio on a Web page plays automatically for more than 3 seconds, either a mechanism is available to pause or stop the audio, or a mechanism is available to control audio volume independently from the overall system volume level.", domain.LangNL: "Als audio op een webpagina automatisch langer dan 3 seconden wordt afgespeeld, is er een mechanisme beschikbaar om de audio te pauzeren of te stoppen, of is er een mechanisme beschikbaar om het audiovolume onafhankelijk van het algemene systeemvolumeniveau te regelen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/audio-control.html",
	},
	{
		ID:                    "contrast-minimum",
		RefID:                 "1.4.3",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Contrast (Minimum)", domain.LangNL: "Contrast (Minimum)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Text must stand out enough against the background. Grey text on a grey background is hard to read.", domain.LangNL: "Tekst moet genoeg afsteken tegen de achtergrond. Grijze tekst op een grijze achtergrond is moeilijk te lezen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The visual presentation of text and images of text has a contrast ratio of at least 4.5:1.", domain.LangNL: "De visuele presentatie van tekst en afbeeldingen van tekst heeft een contrastverhouding van ten minste 4.5:1."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/contrast-minimum.html",
	},
	{
		ID:                    "resize-text",
		RefID:                 "1.4.4",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Resize Text", domain.LangNL: "Tekstgrootte wijzigen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Users must be able to zoom in up to 200% without the site breaking or text overlapping.", domain.LangNL: "Gebruikers moeten tot 200% kunnen inzoomen zonder dat de site breekt of tekst elkaar overlapt."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Except for captions and images of text, text can be resized without assistive technology up to 200 percent without loss of content or functionality.", domain.LangNL: "Behalve voor ondertitels en afbeeldingen van tekst, kan tekst zonder hulptechnologie tot 200 procent worden vergroot zonder verlies van content of functionaliteit."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/resize-text.html",
	},
	{
		ID:                    "images-of-text",
		RefID:                 "1.4.5",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Images of Text", domain.LangNL: "Afbeeldingen van tekst"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Don't use pictures of text (like a JPG of a quote). Use real text so it can be selected, read by screen readers, and zoomed.", domain.LangNL: "Gebruik geen plaatjes van tekst (zoals een JPG van een quote). Gebruik echte tekst zodat het geselecteerd, voorgelezen en gezoomd kan worden."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "If the technologies being used can achieve the visual presentation, text is used to convey information rather than images of text.", domain.LangNL: "Als de gebruikte technologieën de visuele presentatie kunnen bereiken, wordt tekst gebruikt om informatie over te brengen in plaats van afbeeldingen van tekst."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/images-of-text.html",
	},
	{
		ID:                    "reflow",
		RefID:                 "1.4.10",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Reflow", domain.LangNL: "Reflow"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "No horizontal scrolling! The site should fit on a phone screen (320px wide) without forcing the user to scroll left and right.", domain.LangNL: "Geen horizontaal scrollen! De site moet op een telefoonscherm (320px breed) passen zonder dat de gebruiker naar links en rechts moet scrollen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Content can be presented without loss of information or functionality, and without requiring scrolling in two dimensions.", domain.LangNL: "Content kan worden gepresenteerd zonder verlies van informatie of functionaliteit, en zonder dat scrollen in twee dimensies nodig is."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/reflow.html",
	},
	{
		ID:                    "non-text-contrast",
		RefID:                 "1.4.11",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Non-text Contrast", domain.LangNL: "Contrast van niet-tekstuele content"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Buttons, icons, and input borders must have enough contrast (3:1) so people can see them clearly.", domain.LangNL: "Knoppen, iconen en invoerranden moeten genoeg contrast (3:1) hebben zodat mensen ze duidelijk kunnen zien."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The visual presentation of user interface components and graphical objects has a contrast ratio of at least 3:1 against adjacent colors.", domain.LangNL: "De visuele presentatie van componenten van de gebruikersinterface en grafische objecten heeft een contrastverhouding van ten minste 3:1 ten opzichte van aangrenzende kleuren."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/non-text-contrast.html",
	},
	{
		ID:                    "text-spacing",
		RefID:                 "1.4.12",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Text Spacing", domain.LangNL: "Tekstafstand"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Users must be able to increase line height and letter spacing without the text getting cut off.", domain.LangNL: "Gebruikers moeten de regelhoogte en letterafstand kunnen vergroten zonder dat de tekst wordt afgesneden."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "In content implemented using markup languages that support the following text style properties, no loss of content or functionality occurs by setting all of the following and by changing no other style property.", domain.LangNL: "In content die is geïmplementeerd met opmaaktalen die de volgende tekststijleigenschappen ondersteunen, treedt geen verlies van content of functionaliteit op door al het volgende in te stellen en door geen enkele andere stijleigenschap te wijzigen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/text-spacing.html",
	},
	{
		ID:                    "content-on-hover-or-focus",
		RefID:                 "1.4.13",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Content on Hover or Focus", domain.LangNL: "Content bij hover of focus"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Popups (like tooltips) that appear on hover must be dismissible, hoverable (you can move the mouse over them), and persistent.", domain.LangNL: "Pop-ups (zoals tooltips) die verschijnen bij hoveren moeten weg te klikken zijn, hoverbaar zijn (je kunt de muis eroverheen bewegen) en blijven staan."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Where receiving and then removing pointer hover or keyboard focus triggers additional content to become visible and then hidden, the following are true.", domain.LangNL: "Waar het ontvangen en vervolgens verwijderen van de aanwijzer-hover of toetsenbordfocus ervoor zorgt dat extra content zichtbaar en vervolgens verborgen wordt, geldt het volgende."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/content-on-hover-or-focus.html",
	},
	// Principle 2: Operable
	{
		ID:                    "keyboard",
		RefID:                 "2.1.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Keyboard", domain.LangNL: "Toetsenbord"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "You must be able to use the website without a mouse, using only the Tab, Enter, and Arrow keys.", domain.LangNL: "Je moet de website kunnen gebruiken zonder muis, alleen met de Tab, Enter en Pijltoetsen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "All functionality of the content is operable through a keyboard interface without requiring specific timings for individual keystrokes.", domain.LangNL: "Alle functionaliteit van de content is bedienbaar via een toetsenbordinterface zonder specifieke timing voor individuele toetsaanslagen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/keyboard.html",
	},
	{
		ID:                    "no-keyboard-trap",
		RefID:                 "2.1.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "No Keyboard Trap", domain.LangNL: "Geen toetsenbordval"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "You shouldn't get stuck in an element (like a modal or map) when tabbing. You must be able to tab out of it.", domain.LangNL: "Je mag niet vast komen te zitten in een element (zoals een modaal venster of kaart) tijdens het tabben. Je moet eruit kunnen tabben."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "If keyboard focus can be moved to a component of the page using a keyboard interface, then focus can be moved away from that component using only a keyboard interface.", domain.LangNL: "Als de toetsenbordfocus naar een component van de pagina kan worden verplaatst met behulp van een toetsenbordinterface, dan kan de focus van dat component worden weggehaald met alleen een toetsenbordinterface."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/no-keyboard-trap.html",
	},
	{
		ID:                    "character-key-shortcuts",
		RefID:                 "2.1.4",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Character Key Shortcuts", domain.LangNL: "Sneltoetsen met tekens"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Single-key shortcuts (like pressing \"f\" to search) must be turn-off-able or remappable so they don't interfere with typing.", domain.LangNL: "Sneltoetsen met één toets (zoals op \"f\" drukken om te zoeken) moeten uit te schakelen of aan te passen zijn zodat ze niet storen bij het typen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "If a keyboard shortcut is implemented in content using only letter (including upper- and lower-case letters), punctuation, number, or symbol characters, then at least one of the following is true.", domain.LangNL: "Als een sneltoets in content is geïmplementeerd met alleen letter- (inclusief hoofd- en kleine letters), leesteken-, cijfer- of symbooltekens, dan is ten minste een van de volgende waar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/character-key-shortcuts.html",
	},
	{
		ID:                    "timing-adjustable",
		RefID:                 "2.2.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Timing Adjustable", domain.LangNL: "Timing aanpasbaar"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "If there is a time limit (like a session timeout), users must be able to extend it.", domain.LangNL: "Als er een tijdslimiet is (zoals een sessie-timeout), moeten gebruikers deze kunnen verlengen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For each time limit that is set by the content, at least one of the following is true.", domain.LangNL: "Voor elke tijdslimiet die door de content wordt ingesteld, is ten minste een van de volgende waar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/timing-adjustable.html",
	},
	{
		ID:                    "pause-stop-hide",
		RefID:                 "2.2.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Pause, Stop, Hide", domain.LangNL: "Pauzeren, stoppen, verbergen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Moving content (like carousels or tickers) must be pausable by the user.", domain.LangNL: "Bewegende content (zoals carrousels of tickers) moet door de gebruiker gepauzeerd kunnen worden."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For moving, blinking, scrolling, or auto-updating information, all of the following are true.", domain.LangNL: "Voor bewegende, knipperende, scrollende of automatisch bijwerkende informatie geldt al het volgende."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/pause-stop-hide.html",
	},
	{
		ID:                    "three-flashes-or-below-threshold",
		RefID:                 "2.3.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Three Flashes or Below Threshold", domain.LangNL: "Drie flitsen of beneden de drempelwaarde"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "No flashing lights that could cause seizures. Nothing should flash more than 3 times a second.", domain.LangNL: "Geen flitsende lichten die aanvallen kunnen veroorzaken. Niets mag meer dan 3 keer per seconde flitsen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Web pages do not contain anything that flashes more than three times in any one second period, or the flash is below the general flash and red flash thresholds.", domain.LangNL: "Webpagina's bevatten niets dat meer dan drie keer in een periode van één seconde flitst, of de flits blijft onder de algemene flits- en rode flitsdrempelwaarden."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/three-flashes-or-below-threshold.html",
	},
	{
		ID:                    "bypass-blocks",
		RefID:                 "2.4.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Bypass Blocks", domain.LangNL: "Blokken omzeilen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide a \"Skip to Content\" link at the top so keyboard users don't have to tab through the menu on every page.", domain.LangNL: "Zorg voor een \"Ga naar inhoud\"-link bovenaan zodat toetsenbordgebruikers niet op elke pagina door het menu hoeven te tabben."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "A mechanism is available to bypass blocks of content that are repeated on multiple Web pages.", domain.LangNL: "Er is een mechanisme beschikbaar om blokken content te omzeilen die op meerdere webpagina's worden herhaald."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/bypass-blocks.html",
	},
	{
		ID:                    "page-titled",
		RefID:                 "2.4.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Page Titled", domain.LangNL: "Pagina met titel"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Every page must have a unique and descriptive title (shown in the browser tab).", domain.LangNL: "Elke pagina moet een unieke en beschrijvende titel hebben (te zien in het browsertabblad)."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Web pages have titles that describe topic or purpose.", domain.LangNL: "Webpagina's hebben titels die het onderwerp of doel beschrijven."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/page-titled.html",
	},
	{
		ID:                    "focus-order",
		RefID:                 "2.4.3",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Focus Order", domain.LangNL: "Focusvolgorde"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "The order you tab through elements must be logical (usually left-to-right, top-to-bottom).", domain.LangNL: "De volgorde waarin je door elementen tabt moet logisch zijn (meestal van links naar rechts, van boven naar beneden)."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "If a Web page can be navigated sequentially and the navigation sequences affect meaning or operation, focusable components receive focus in an order that preserves meaning and operability.", domain.LangNL: "Als er door een webpagina sequentieel kan worden genavigeerd en de navigatievolgorde van invloed is op de betekenis of bediening, ontvangen componenten met focus de focus in een volgorde die de betekenis en bedienbaarheid behoudt."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/focus-order.html",
	},
	{
		ID:                    "link-purpose-in-context",
		RefID:                 "2.4.4",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Link Purpose (In Context)", domain.LangNL: "Linkdoel (in context)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Link text should make sense. Avoid \"Click here\". Use \"Read more about WCAG\" instead.", domain.LangNL: "Linktekst moet logisch zijn. Vermijd \"Klik hier\". Gebruik in plaats daarvan \"Lees meer over WCAG\"."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The purpose of each link can be determined from the link text alone or from the link text together with its programmatically determined link context.", domain.LangNL: "Het doel van elke link kan worden bepaald uit alleen de linktekst of uit de linktekst samen met de door software bepaalde linkcontext."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/link-purpose-in-context.html",
	},
	{
		ID:                    "multiple-ways",
		RefID:                 "2.4.5",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Multiple Ways", domain.LangNL: "Meerdere manieren"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide multiple ways to find pages, like a search bar, a sitemap, or a navigation menu.", domain.LangNL: "Bied meerdere manieren om pagina's te vinden, zoals een zoekbalk, een sitemap of een navigatiemenu."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "More than one way is available to locate a Web page within a set of Web pages except where the Web Page is the result of, or a step in, a process.", domain.LangNL: "Er is meer dan één manier beschikbaar om een webpagina binnen een verzameling webpagina's te vinden, behalve wanneer de webpagina het resultaat is van, of een stap is in, een proces."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/multiple-ways.html",
	},
	{
		ID:                    "headings-and-labels",
		RefID:                 "2.4.6",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Headings and Labels", domain.LangNL: "Koppen en labels"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Page headings and form labels must be clear and descriptive so users know where they are and what to do.", domain.LangNL: "Paginakoppen en formulierlabels moeten duidelijk en beschrijvend zijn, zodat gebruikers weten waar ze zijn en wat ze moeten doen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Headings and labels describe topic or purpose.", domain.LangNL: "Koppen en labels beschrijven het onderwerp of doel."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/headings-and-labels.html",
	},
	{
		ID:                    "focus-visible",
		RefID:                 "2.4.7",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Focus Visible", domain.LangNL: "Focus zichtbaar"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "When you tab through the page, you should clearly see which element is selected (usually with a ring or outline).", domain.LangNL: "Wanneer je door de pagina tabt, moet je duidelijk zien welk element geselecteerd is (meestal met een ring of omlijning)."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Any keyboard operable user interface has a mode of operation where the keyboard focus indicator is visible.", domain.LangNL: "Elke met het toetsenbord bedienbare gebruikersinterface heeft een bedieningswijze waarin de focusindicator van het toetsenbord zichtbaar is."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/focus-visible.html",
	},
	{
		ID:                    "pointer-gestures",
		RefID:                 "2.5.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Pointer Gestures", domain.LangNL: "Aanwijzergebaren"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Don't require complex gestures like pinching or swiping. Provide simple buttons as alternatives.", domain.LangNL: "Vereis geen complexe gebaren zoals knijpen of vegen. Zorg voor simpele knoppen als alternatief."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "All functionality that uses multipoint or path-based gestures for operation can be operated with a single pointer without a path-based gesture.", domain.LangNL: "Alle functionaliteit die multipoint- of padgebaseerde gebaren gebruikt voor bediening, kan worden bediend met een enkele aanwijzer zonder een padgebaseerd gebaar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/pointer-gestures.html",
	},
	{
		ID:                    "pointer-cancellation",
		RefID:                 "2.5.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Pointer Cancellation", domain.LangNL: "Aanwijzerannulering"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Actions should happen on the \"up\" click, not the \"down\" click, so users can cancel by moving the mouse away.", domain.LangNL: "Acties moeten gebeuren bij het \"loslaten\" van de klik, niet bij het \"indrukken\", zodat gebruikers kunnen annuleren door de muis weg te bewegen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For functionality that can be operated using a single pointer, at least one of the following is true.", domain.LangNL: "Voor functionaliteit die met een enkele aanwijzer kan worden bediend, is ten minste een van de volgende waar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/pointer-cancellation.html",
	},
	{
		ID:                    "label-in-name",
		RefID:                 "2.5.3",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Label in Name", domain.LangNL: "Label in naam"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "The visible label of a button must match the name used by screen readers (and speech recognition software).", domain.LangNL: "Het zichtbare label van een knop moet overeenkomen met de naam die door schermlezers (en spraakherkenningssoftware) wordt gebruikt."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For user interface components with labels that include text or images of text, the name contains the text that is presented visually.", domain.LangNL: "Voor componenten van de gebruikersinterface met labels die tekst of afbeeldingen van tekst bevatten, bevat de naam de tekst die visueel wordt gepresenteerd."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/label-in-name.html",
	},
	{
		ID:                    "motion-actuation",
		RefID:                 "2.5.4",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Motion Actuation", domain.LangNL: "Bewegingsactivering"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Don't require shaking the device to do something. Provide a button too.", domain.LangNL: "Vereis niet dat het apparaat geschud moet worden om iets te doen. Zorg ook voor een knop."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Functionality that can be operated by device motion or user motion can also be operated by user interface components and responding to the motion can be disabled to prevent accidental actuation.", domain.LangNL: "Functionaliteit die kan worden bediend door beweging van het apparaat of beweging van de gebruiker, kan ook worden bediend door componenten van de gebruikersinterface en het reageren op de beweging kan worden uitgeschakeld om onbedoelde activering te voorkomen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/motion-actuation.html",
	},
	// Principle 3: Understandable
	{
		ID:                    "language-of-page",
		RefID:                 "3.1.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Language of Page", domain.LangNL: "Taal van de pagina"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Set the language attribute on the html tag (e.g. <html lang=\"en\">).", domain.LangNL: "Stel het taalattribuut in op de html-tag (bv. <html lang=\"nl\">)."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The default human language of each Web page can be programmatically determined.", domain.LangNL: "De standaard menselijke taal van elke webpagina kan door software worden bepaald."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/language-of-page.html",
	},
	{
		ID:                    "language-of-parts",
		RefID:                 "3.1.2",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Language of Parts", domain.LangNL: "Taal van onderdelen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "If you switch languages in the text (like a French quote in an English text), mark it with a lang attribute.", domain.LangNL: "Als je van taal wisselt in de tekst (zoals een Frans citaat in een Nederlandse tekst), markeer dit dan met een lang-attribuut."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The human language of each passage or phrase in the content can be programmatically determined except for proper names, technical terms, words of indeterminate language, and words or phrases that have become part of the vernacular of the immediate surrounding text.", domain.LangNL: "De menselijke taal van elke passage of zin in de content kan door software worden bepaald, behalve voor eigennamen, technische termen, woorden van onbepaalde taal en woorden of zinnen die deel zijn gaan uitmaken van de volkstaal van de direct omringende tekst."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/language-of-parts.html",
	},
	{
		ID:                    "on-focus",
		RefID:                 "3.2.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "On Focus", domain.LangNL: "Bij focus"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Tabbing to an element shouldn't automatically trigger a popup or page change.", domain.LangNL: "Naar een element tabben mag niet automatisch een pop-up of paginawijziging veroorzaken."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "When any user interface component receives focus, it does not initiate a change of context.", domain.LangNL: "Wanneer een component van de gebruikersinterface de focus ontvangt, initieert dit geen verandering van context."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/on-focus.html",
	},
	{
		ID:                    "on-input",
		RefID:                 "3.2.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "On Input", domain.LangNL: "Bij input"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Changing a form setting shouldn't submit the form automatically unless the user expects it.", domain.LangNL: "Een formulierinstelling wijzigen mag het formulier niet automatisch verzenden, tenzij de gebruiker dit verwacht."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Changing the setting of any user interface component does not automatically cause a change of context unless the user has been advised of the behavior before using the component.", domain.LangNL: "Het wijzigen van de instelling van een component van de gebruikersinterface veroorzaakt niet automatisch een verandering van context, tenzij de gebruiker vóór het gebruik van het component op de hoogte is gesteld van het gedrag."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/on-input.html",
	},
	{
		ID:                    "consistent-navigation",
		RefID:                 "3.2.3",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Consistent Navigation", domain.LangNL: "Consistente navigatie"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Keep the navigation menu in the same place on every page.", domain.LangNL: "Houd het navigatiemenu op elke pagina op dezelfde plek."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Navigational mechanisms that are repeated on multiple Web pages within a set of Web pages occur in the same relative order each time they are repeated, unless a change is initiated by the user.", domain.LangNL: "Navigatiemechanismen die op meerdere webpagina's binnen een verzameling webpagina's worden herhaald, komen elke keer dat ze worden herhaald in dezelfde relatieve volgorde voor, tenzij een wijziging door de gebruiker wordt geïnitieerd."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/consistent-navigation.html",
	},
	{
		ID:                    "consistent-identification",
		RefID:                 "3.2.4",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Consistent Identification", domain.LangNL: "Consistente identificatie"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Use the same icon for the same thing everywhere (e.g. don't use a magnifying glass for search on one page and a binocular on another).", domain.LangNL: "Gebruik overal hetzelfde icoon voor hetzelfde ding (bv. gebruik geen vergrootglas voor zoeken op de ene pagina en een verrekijker op de andere)."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Components that have the same functionality within a set of Web pages are identified consistently.", domain.LangNL: "Componenten die dezelfde functionaliteit hebben binnen een verzameling webpagina's worden consistent geïdentificeerd."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/consistent-identification.html",
	},
	{
		ID:                    "error-identification",
		RefID:                 "3.3.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Error Identification", domain.LangNL: "Foutidentificatie"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "If there is a form error, tell the user exactly what is wrong in text.", domain.LangNL: "Als er een formulierfout is, vertel de gebruiker dan precies wat er mis is in tekst."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "If an input error is automatically detected, the item that is in error is identified and the error is described to the user in text.", domain.LangNL: "Als een invoerfout automatisch wordt gedetecteerd, wordt het item dat fout is geïdentificeerd en wordt de fout in tekst aan de gebruiker beschreven."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/error-identification.html",
	},
	{
		ID:                    "labels-or-instructions",
		RefID:                 "3.3.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Labels or Instructions", domain.LangNL: "Labels of instructies"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide clear instructions for inputs (e.g. \"Date format: DD/MM/YYYY\").", domain.LangNL: "Zorg voor duidelijke instructies voor invoervelden (bv. \"Datumformaat: DD/MM/JJJJ\")."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Labels or instructions are provided when content requires user input.", domain.LangNL: "Labels of instructies worden gegeven wanneer content gebruikersinvoer vereist."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/labels-or-instructions.html",
	},
	{
		ID:                    "error-suggestion",
		RefID:                 "3.3.3",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Error Suggestion", domain.LangNL: "Foutsuggestie"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "If a user makes a mistake, suggest how to fix it (e.g. \"Did you mean...\").", domain.LangNL: "Als een gebruiker een fout maakt, suggereer dan hoe dit op te lossen is (bv. \"Bedoelde u...\")."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "If an input error is automatically detected and suggestions for correction are known, then the suggestions are provided to the user, unless it would jeopardize the security or purpose of the content.", domain.LangNL: "Als een invoerfout automatisch wordt gedetecteerd en suggesties voor correctie bekend zijn, worden de suggesties aan de gebruiker gegeven, tenzij dit de veiligheid of het doel van de content in gevaar zou brengen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/error-suggestion.html",
	},
	{
		ID:                    "error-prevention-legal-financial-data",
		RefID:                 "3.3.4",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Error Prevention (Legal, Financial, Data)", domain.LangNL: "Foutpreventie (Wettelijk, Financieel, Gegevens)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "For important actions (like money transfers), let users review, confirm, or reverse the action.", domain.LangNL: "Voor belangrijke acties (zoals geldovermakingen), laat gebruikers de actie controleren, bevestigen of terugdraaien."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For Web pages that cause legal commitments or financial transactions for the user to occur, that modify or delete user-controllable data in data storage systems, or that submit user test responses, at least one of the following is true.", domain.LangNL: "Voor webpagina's die wettelijke verplichtingen of financiële transacties voor de gebruiker veroorzaken, die door de gebruiker controleerbare gegevens in gegevensopslagsystemen wijzigen of verwijderen, of die testantwoorden van de gebruiker verzenden, is ten minste een van de volgende waar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/error-prevention-legal-financial-data.html",
	},
	// Principle 4: Robust
	{
		ID:                    "parsing",
		RefID:                 "4.1.1",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Parsing", domain.LangNL: "Parsing"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Write clean, valid HTML code without syntax errors.", domain.LangNL: "Schrijf schone, geldige HTML-code zonder syntaxisfouten."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "In content implemented using markup languages, elements have complete start and end tags, elements are nested according to their specifications, elements do not contain duplicate attributes, and any IDs are unique, except where the specifications allow these features.", domain.LangNL: "In content die is geïmplementeerd met opmaaktalen, hebben elementen volledige start- en eindtags, zijn elementen genest volgens hun specificaties, bevatten elementen geen dubbele attributen en zijn alle ID's uniek, behalve waar de specificaties deze kenmerken toestaan."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/parsing.html",
	},
	{
		ID:                    "name-role-value",
		RefID:                 "4.1.2",
		Level:                 domain.LevelA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Name, Role, Value", domain.LangNL: "Naam, rol, waarde"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Custom controls (like a custom dropdown) must tell screen readers what they are, what state they are in (open/closed), and when they change.", domain.LangNL: "Aangepaste bedieningselementen (zoals een aangepaste dropdown) moeten aan schermlezers vertellen wat ze zijn, in welke staat ze verkeren (open/gesloten) en wanneer ze veranderen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For all user interface components (including but not limited to: form elements, links and components generated by scripts), the name and role can be programmatically determined; states, properties, and values that can be set by the user can be programmatically set; and notification of changes to these items is available to user agents, including assistive technologies.", domain.LangNL: "Voor alle componenten van de gebruikersinterface (inclusief maar niet beperkt tot: formulierelementen, links en componenten gegenereerd door scripts), kunnen de naam en rol door software worden bepaald; toestanden, eigenschappen en waarden die door de gebruiker kunnen worden ingesteld, kunnen door software worden ingesteld; en melding van wijzigingen aan deze items is beschikbaar voor user agents, inclusief hulptechnologieën."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/name-role-value.html",
	},
	{
		ID:                    "status-messages",
		RefID:                 "4.1.3",
		Level:                 domain.LevelAA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Status Messages", domain.LangNL: "Statusberichten"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Status messages (like \"Form submitted successfully\") must be announced by screen readers without moving focus.", domain.LangNL: "Statusberichten (zoals \"Formulier succesvol verzonden\") moeten worden aangekondigd door schermlezers zonder de focus te verplaatsen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "In content implemented using markup languages, status messages can be programmatically determined through role or properties such that they can be presented to the user by assistive technologies without receiving focus.", domain.LangNL: "In content die is geïmplementeerd met opmaaktalen, kunnen statusberichten door software worden bepaald via rol of eigenschappen, zodat ze door hulptechnologieën aan de gebruiker kunnen worden gepresenteerd zonder focus te ontvangen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/status-messages.html",
	},
	// Level AAA
	{
		ID:                    "sign-language-prerecorded",
		RefID:                 "1.2.6",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Sign Language (Prerecorded)", domain.LangNL: "Gebarentaal (vooraf opgenomen)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide a sign language video for all audio content.", domain.LangNL: "Zorg voor een gebarentaalvideo voor alle audiocontent."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Sign language interpretation is provided for all prerecorded audio content in synchronized media.", domain.LangNL: "Er wordt gebarentaalvertolking geleverd voor alle vooraf opgenomen audiocontent in gesynchroniseerde media."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/sign-language-prerecorded.html",
	},
	{
		ID:                    "extended-audio-description-prerecorded",
		RefID:                 "1.2.7",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Extended Audio Description (Prerecorded)", domain.LangNL: "Verlengde audiodescriptie (vooraf opgenomen)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "If the video is too fast for audio description, pause the video to allow time for the description.", domain.LangNL: "Als de video te snel is voor audiodescriptie, pauzeer de video dan om tijd te maken voor de beschrijving."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Where pauses in foreground audio are insufficient to allow audio descriptions to convey the sense of the video, extended audio description is provided for all prerecorded video content in synchronized media.", domain.LangNL: "Wanneer pauzes in het voorgrondgeluid onvoldoende zijn om audiodescripties de betekenis van de video te laten overbrengen, wordt verlengde audiodescriptie geleverd voor alle vooraf opgenomen videocontent in gesynchroniseerde media."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/extended-audio-description-prerecorded.html",
	},
	{
		ID:                    "media-alternative-prerecorded",
		RefID:                 "1.2.8",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Media Alternative (Prerecorded)", domain.LangNL: "Media-alternatief (vooraf opgenomen)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide a text transcript that includes all audio and visual information.", domain.LangNL: "Zorg voor een teksttranscript dat alle audio- en visuele informatie bevat."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "An alternative for time-based media is provided for all prerecorded synchronized media and for all prerecorded video-only media.", domain.LangNL: "Er wordt een alternatief voor tijdgebaseerde media geboden voor alle vooraf opgenomen gesynchroniseerde media en voor alle vooraf opgenomen louter-videobeeld media."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/media-alternative-prerecorded.html",
	},
	{
		ID:                    "audio-only-live",
		RefID:                 "1.2.9",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Audio-only (Live)", domain.LangNL: "Louter-geluid (live)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide a live transcript or captions for live audio.", domain.LangNL: "Zorg voor een live transcript of ondertiteling voor live audio."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "An alternative for time-based media that presents equivalent information for live audio-only content is provided.", domain.LangNL: "Er wordt een alternatief voor tijdgebaseerde media geboden dat gelijkwaardige informatie presenteert voor live louter-geluid content."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/audio-only-live.html",
	},
	{
		ID:                    "identify-purpose",
		RefID:                 "1.3.6",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Identify Purpose", domain.LangNL: "Identificeer doel"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Use specific HTML5 regions (like main, nav) and ARIA landmarks so software knows what each part of the page is for.", domain.LangNL: "Gebruik specifieke HTML5-regio's (zoals main, nav) en ARIA-landmarks zodat software weet waar elk deel van de pagina voor dient."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "In content implemented using markup languages, the purpose of User Interface Components, icons, and regions can be programmatically determined.", domain.LangNL: "In content die is geïmplementeerd met opmaaktalen, kan het doel van componenten van de gebruikersinterface, iconen en regio's door software worden bepaald."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/identify-purpose.html",
	},
	{
		ID:                    "contrast-enhanced",
		RefID:                 "1.4.6",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Contrast (Enhanced)", domain.LangNL: "Contrast (Verhoogd)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Text needs very high contrast (7:1) to be readable by people with low vision.", domain.LangNL: "Tekst heeft een zeer hoog contrast (7:1) nodig om leesbaar te zijn voor mensen met een visuele beperking."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The visual presentation of text and images of text has a contrast ratio of at least 7:1.", domain.LangNL: "De visuele presentatie van tekst en afbeeldingen van tekst heeft een contrastverhouding van ten minste 7:1."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/contrast-enhanced.html",
	},
	{
		ID:                    "low-or-no-background-audio",
		RefID:                 "1.4.7",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Low or No Background Audio", domain.LangNL: "Laag of geen achtergrondgeluid"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Background music should be very quiet or absent when someone is speaking.", domain.LangNL: "Achtergrondmuziek moet erg stil of afwezig zijn als iemand spreekt."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For prerecorded audio-only content that (1) contains primarily speech in the foreground, (2) is not an audio CAPTCHA or audio logo, and (3) is not vocalization intended to be primarily musical expression such as singing or rapping, at least one of the following is true.", domain.LangNL: "Voor vooraf opgenomen louter-geluid content die (1) voornamelijk spraak op de voorgrond bevat, (2) geen audio-CAPTCHA of audiologo is, en (3) geen vocalisatie is die voornamelijk bedoeld is als muzikale expressie zoals zingen of rappen, is ten minste een van de volgende waar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/low-or-no-background-audio.html",
	},
	{
		ID:                    "visual-presentation",
		RefID:                 "1.4.8",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Visual Presentation", domain.LangNL: "Visuele presentatie"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Users can customize colors, width, and spacing of text blocks.", domain.LangNL: "Gebruikers kunnen kleuren, breedte en afstand van tekstblokken aanpassen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For the visual presentation of blocks of text, a mechanism is available to achieve the following.", domain.LangNL: "Voor de visuele presentatie van tekstblokken is een mechanisme beschikbaar om het volgende te bereiken."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/visual-presentation.html",
	},
	{
		ID:                    "images-of-text-no-exception",
		RefID:                 "1.4.9",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Images of Text (No Exception)", domain.LangNL: "Afbeeldingen van tekst (geen uitzondering)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Never use images of text. Always use real text.", domain.LangNL: "Gebruik nooit afbeeldingen van tekst. Gebruik altijd echte tekst."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Images of text are only used for pure decoration or where a particular presentation of text is essential to the information being conveyed.", domain.LangNL: "Afbeeldingen van tekst worden alleen gebruikt voor pure decoratie of waar een bepaalde presentatie van tekst essentieel is voor de informatie die wordt overgebracht."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/images-of-text-no-exception.html",
	},
	{
		ID:                    "keyboard-no-exception",
		RefID:                 "2.1.3",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Keyboard (No Exception)", domain.LangNL: "Toetsenbord (geen uitzondering)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Everything must work with a keyboard, with no exceptions.", domain.LangNL: "Alles moet werken met een toetsenbord, zonder uitzonderingen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "All functionality of the content is operable through a keyboard interface without requiring specific timings for individual keystrokes.", domain.LangNL: "Alle functionaliteit van de content is bedienbaar via een toetsenbordinterface zonder specifieke timing voor individuele toetsaanslagen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/keyboard-no-exception.html",
	},
	{
		ID:                    "no-timing",
		RefID:                 "2.2.3",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "No Timing", domain.LangNL: "Geen timing"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "No time limits on anything.", domain.LangNL: "Geen tijdslimieten op wat dan ook."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Timing is not an essential part of the event or activity presented by the content, except for non-interactive synchronized media and real-time events.", domain.LangNL: "Timing is geen essentieel onderdeel van de gebeurtenis of activiteit die door de content wordt gepresenteerd, behalve voor niet-interactieve gesynchroniseerde media en real-time gebeurtenissen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/no-timing.html",
	},
	{
		ID:                    "interruptions",
		RefID:                 "2.2.4",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Interruptions", domain.LangNL: "Onderbrekingen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Users can turn off alerts and updates so they aren't distracted.", domain.LangNL: "Gebruikers kunnen meldingen en updates uitschakelen zodat ze niet worden afgeleid."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Interruptions can be postponed or suppressed by the user, except interruptions involving an emergency.", domain.LangNL: "Onderbrekingen kunnen door de gebruiker worden uitgesteld of onderdrukt, behalve onderbrekingen die betrekking hebben op een noodgeval."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/interruptions.html",
	},
	{
		ID:                    "re-authenticating",
		RefID:                 "2.2.5",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Re-authenticating", domain.LangNL: "Herauthenticatie"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "If your session times out, you shouldn't lose your work when you log back in.", domain.LangNL: "Als je sessie verloopt, mag je je werk niet verliezen wanneer je opnieuw inlogt."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "When an authenticated session expires, the user can continue the activity without loss of data after re-authenticating.", domain.LangNL: "Wanneer een geauthenticeerde sessie verloopt, kan de gebruiker de activiteit voortzetten zonder verlies van gegevens na herauthenticatie."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/re-authenticating.html",
	},
	{
		ID:                    "timeouts",
		RefID:                 "2.2.6",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Timeouts", domain.LangNL: "Time-outs"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Warn users if their data will be lost after a period of inactivity.", domain.LangNL: "Waarschuw gebruikers als hun gegevens verloren gaan na een periode van inactiviteit."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Users are warned of the duration of any user inactivity that could cause data loss, unless the data is preserved for more than 20 hours when the user does not take any actions.", domain.LangNL: "Gebruikers worden gewaarschuwd voor de duur van enige inactiviteit van de gebruiker die gegevensverlies zou kunnen veroorzaken, tenzij de gegevens meer dan 20 uur worden bewaard wanneer de gebruiker geen actie onderneemt."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/timeouts.html",
	},
	{
		ID:                    "three-flashes",
		RefID:                 "2.3.2",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Three Flashes", domain.LangNL: "Drie flitsen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Nothing should flash more than 3 times a second, ever.", domain.LangNL: "Niets mag ooit meer dan 3 keer per seconde flitsen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Web pages do not contain anything that flashes more than three times in any one second period.", domain.LangNL: "Webpagina's bevatten niets dat meer dan drie keer in een periode van één seconde flitst."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/three-flashes.html",
	},
	{
		ID:                    "animation-from-interactions",
		RefID:                 "2.3.3",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Animation from Interactions", domain.LangNL: "Animatie door interacties"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Users can turn off animations that happen when they click or scroll.", domain.LangNL: "Gebruikers kunnen animaties uitschakelen die gebeuren wanneer ze klikken of scrollen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Motion animation triggered by interaction can be disabled, unless the animation is essential to the functionality or the information being conveyed.", domain.LangNL: "Bewegingsanimatie die wordt geactiveerd door interactie kan worden uitgeschakeld, tenzij de animatie essentieel is voor de functionaliteit of de informatie die wordt overgebracht."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/animation-from-interactions.html",
	},
	{
		ID:                    "location",
		RefID:                 "2.4.8",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Location", domain.LangNL: "Locatie"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Use breadcrumbs so users know where they are in the site structure.", domain.LangNL: "Gebruik kruimelpaden zodat gebruikers weten waar ze zich in de sitestructuur bevinden."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Information about the user's location within a set of Web pages is available.", domain.LangNL: "Informatie over de locatie van de gebruiker binnen een verzameling webpagina's is beschikbaar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/location.html",
	},
	{
		ID:                    "link-purpose-link-only",
		RefID:                 "2.4.9",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Link Purpose (Link Only)", domain.LangNL: "Linkdoel (alleen link)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Every link must make sense on its own (e.g. \"Read about WCAG\" instead of just \"Read more\").", domain.LangNL: "Elke link moet op zichzelf logisch zijn (bv. \"Lees over WCAG\" in plaats van alleen \"Lees meer\")."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "A mechanism is available to allow the purpose of each link to be identified from link text alone, except where the purpose of the link would be ambiguous to users in general.", domain.LangNL: "Er is een mechanisme beschikbaar om het doel van elke link te identificeren uit alleen de linktekst, behalve waar het doel van de link dubbelzinnig zou zijn voor gebruikers in het algemeen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/link-purpose-link-only.html",
	},
	{
		ID:                    "section-headings",
		RefID:                 "2.4.10",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Section Headings", domain.LangNL: "Sectiekoppen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Break up long content with headings for every section.", domain.LangNL: "Breek lange content op met koppen voor elke sectie."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Section headings are used to organize the content.", domain.LangNL: "Sectiekoppen worden gebruikt om de content te organiseren."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/section-headings.html",
	},
	{
		ID:                    "target-size",
		RefID:                 "2.5.5",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDesign, domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Target Size", domain.LangNL: "Grootte van het aanwijsgebied"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Buttons and links should be large enough (44x44 pixels) to easily tap with a finger.", domain.LangNL: "Knoppen en links moeten groot genoeg zijn (44x44 pixels) om gemakkelijk met een vinger op te tikken."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "The size of the target for pointer inputs is at least 44 by 44 CSS pixels except when...", domain.LangNL: "De grootte van het doel voor aanwijzerinvoer is ten minste 44 bij 44 CSS-pixels, behalve wanneer..."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/target-size.html",
	},
	{
		ID:                    "concurrent-input-mechanisms",
		RefID:                 "2.5.6",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop},
		Title:                 domain.LocalizedText{domain.LangEN: "Concurrent Input Mechanisms", domain.LangNL: "Gelijktijdige invoermechanismen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Users can switch between mouse, keyboard, touch, and voice input at any time.", domain.LangNL: "Gebruikers kunnen op elk moment wisselen tussen muis, toetsenbord, aanraking en spraakinvoer."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Web content does not restrict use of input modalities available on a platform except where the restriction is essential, required to ensure the security of the content, or required to respect user settings.", domain.LangNL: "Webcontent beperkt het gebruik van invoermodaliteiten die beschikbaar zijn op een platform niet, behalve waar de beperking essentieel is, vereist is om de veiligheid van de content te waarborgen of vereist is om gebruikersinstellingen te respecteren."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/concurrent-input-mechanisms.html",
	},
	{
		ID:                    "unusual-words",
		RefID:                 "3.1.3",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Unusual Words", domain.LangNL: "Ongebruikelijke woorden"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Explain hard words, jargon, or idioms.", domain.LangNL: "Leg moeilijke woorden, jargon of uitdrukkingen uit."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "A mechanism is available for identifying specific definitions of words or phrases used in an unusual or restricted way, including idioms and jargon.", domain.LangNL: "Er is een mechanisme beschikbaar voor het identificeren van specifieke definities van woorden of zinnen die op een ongebruikelijke of beperkte manier worden gebruikt, inclusief idiomen en jargon."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/unusual-words.html",
	},
	{
		ID:                    "abbreviations",
		RefID:                 "3.1.4",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Abbreviations", domain.LangNL: "Afkortingen"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Explain abbreviations the first time you use them (e.g. \"World Wide Web Consortium (W3C)\").", domain.LangNL: "Leg afkortingen uit de eerste keer dat je ze gebruikt (bv. \"World Wide Web Consortium (W3C)\")."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "A mechanism for identifying the expanded form or meaning of abbreviations is available.", domain.LangNL: "Er is een mechanisme beschikbaar voor het identificeren van de uitgeschreven vorm of betekenis van afkortingen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/abbreviations.html",
	},
	{
		ID:                    "reading-level",
		RefID:                 "3.1.5",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Reading Level", domain.LangNL: "Leesniveau"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Write simply. If the text is complex, provide a simpler summary.", domain.LangNL: "Schrijf eenvoudig. Als de tekst complex is, geef dan een eenvoudigere samenvatting."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "When text requires reading ability more advanced than the lower secondary education level after removal of proper names and titles, supplemental content, or a version that does not require reading ability more advanced than the lower secondary education level, is available.", domain.LangNL: "Wanneer tekst een leesvaardigheid vereist die geavanceerder is dan het niveau van het lager secundair onderwijs na verwijdering van eigennamen en titels, is aanvullende content of een versie die geen leesvaardigheid vereist die geavanceerder is dan het niveau van het lager secundair onderwijs, beschikbaar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/reading-level.html",
	},
	{
		ID:                    "pronunciation",
		RefID:                 "3.1.6",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent},
		Title:                 domain.LocalizedText{domain.LangEN: "Pronunciation", domain.LangNL: "Uitspraak"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "If a word can be pronounced in two ways with different meanings, explain how to say it.", domain.LangNL: "Als een woord op twee manieren kan worden uitgesproken met verschillende betekenissen, leg dan uit hoe je het zegt."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "A mechanism is available for identifying specific pronunciation of words where meaning of the words, in context, is ambiguous without knowing the pronunciation.", domain.LangNL: "Er is een mechanisme beschikbaar voor het identificeren van specifieke uitspraak van woorden waar de betekenis van de woorden, in context, dubbelzinnig is zonder de uitspraak te kennen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/pronunciation.html",
	},
	{
		ID:                    "change-on-request",
		RefID:                 "3.2.5",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Change on Request", domain.LangNL: "Verandering op verzoek"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Don't change the page layout or context automatically. Let the user choose.", domain.LangNL: "Verander de pagina-indeling of context niet automatisch. Laat de gebruiker kiezen."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Changes of context are initiated only by user request or a mechanism is available to turn off such changes.", domain.LangNL: "Veranderingen van context worden alleen geïnitieerd op verzoek van de gebruiker of er is een mechanisme beschikbaar om dergelijke veranderingen uit te schakelen."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/change-on-request.html",
	},
	{
		ID:                    "help",
		RefID:                 "3.3.5",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleContent, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Help", domain.LangNL: "Hulp"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Provide help links or tooltips for complex forms or tasks.", domain.LangNL: "Zorg voor hulplinks of tooltips voor complexe formulieren of taken."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "Context-sensitive help is available.", domain.LangNL: "Contextgevoelige hulp is beschikbaar."},
		ReferenceURL:          "https://www.w3.org/WAI/WCAG21/Understanding/help.html",
	},
	{
		ID:                    "error-prevention-all",
		RefID:                 "3.3.6",
		Level:                 domain.LevelAAA,
		Roles:                 []domain.Role{domain.RoleDevelop, domain.RoleDesign},
		Title:                 domain.LocalizedText{domain.LangEN: "Error Prevention (All)", domain.LangNL: "Foutpreventie (Alle)"},
		DescriptionSimplified: domain.LocalizedText{domain.LangEN: "Let users check and confirm their data before submitting ANY form.", domain.LangNL: "Laat gebruikers hun gegevens controleren en bevestigen voordat ze ELK formulier verzenden."},
		DescriptionOriginal:   domain.LocalizedText{domain.LangEN: "For Web pages that require the user to submit information, at least one of the following is true: (1) Reversible, (2) Checked, (3) Confirmed.", domain.LangNL: "Voor webpagina's die vereisen dat de gebruiker informatie indient, is ten minste een van de volgende waar: (1) Omkeerbaar, (2) Gecontroleerd, (3) Bevestigd."},
	},
}
