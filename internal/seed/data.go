package seed

// defaultCategories is the stock word catalogue installed by Run. Five
// categories of fifty words each, split across the three difficulty tiers.
var defaultCategories = []categorySeed{
	{
		Name:        "Animals",
		Description: "Words related to animals and wildlife",
		Words: []wordSeed{
			{Text: "dog", Meaning: "Man's best friend", Difficulty: "easy"},
			{Text: "cat", Meaning: "A feline pet that meows", Difficulty: "easy"},
			{Text: "bird", Meaning: "A feathered animal that flies", Difficulty: "easy"},
			{Text: "fish", Meaning: "An aquatic animal that swims", Difficulty: "easy"},
			{Text: "cow", Meaning: "A farm animal that says 'moo'", Difficulty: "easy"},
			{Text: "pig", Meaning: "A farm animal that oinks", Difficulty: "easy"},
			{Text: "duck", Meaning: "A bird that quacks", Difficulty: "easy"},
			{Text: "bee", Meaning: "An insect that makes honey", Difficulty: "easy"},
			{Text: "ant", Meaning: "A tiny insect that lives in colonies", Difficulty: "easy"},
			{Text: "fox", Meaning: "A cunning, red-furred mammal", Difficulty: "easy"},
			{Text: "hen", Meaning: "A female chicken", Difficulty: "easy"},
			{Text: "bat", Meaning: "A flying mammal, active at night", Difficulty: "easy"},
			{Text: "frog", Meaning: "An amphibian that hops and ribbits", Difficulty: "easy"},
			{Text: "goat", Meaning: "A farm animal with horns", Difficulty: "easy"},
			{Text: "lion", Meaning: "The king of the jungle", Difficulty: "easy"},
			{Text: "bear", Meaning: "A large mammal, loves honey", Difficulty: "easy"},
			{Text: "wolf", Meaning: "A wild canine that howls", Difficulty: "easy"},
			{Text: "tiger", Meaning: "A large striped cat", Difficulty: "medium"},
			{Text: "horse", Meaning: "An animal you can ride", Difficulty: "medium"},
			{Text: "sheep", Meaning: "A farm animal with wool", Difficulty: "medium"},
			{Text: "mouse", Meaning: "A small rodent, loves cheese", Difficulty: "medium"},
			{Text: "rabbit", Meaning: "A hopping animal with long ears", Difficulty: "medium"},
			{Text: "monkey", Meaning: "A primate that loves bananas", Difficulty: "medium"},
			{Text: "snake", Meaning: "A reptile with no legs", Difficulty: "medium"},
			{Text: "shark", Meaning: "A predator fish in the ocean", Difficulty: "medium"},
			{Text: "whale", Meaning: "The largest mammal in the ocean", Difficulty: "medium"},
			{Text: "koala", Meaning: "An Australian animal that eats eucalyptus", Difficulty: "medium"},
			{Text: "panda", Meaning: "A black and white bear from China", Difficulty: "medium"},
			{Text: "eagle", Meaning: "A large bird of prey", Difficulty: "medium"},
			{Text: "deer", Meaning: "A forest animal with antlers", Difficulty: "medium"},
			{Text: "zebra", Meaning: "A striped animal from Africa", Difficulty: "medium"},
			{Text: "owl", Meaning: "A bird that hunts at night", Difficulty: "medium"},
			{Text: "giraffe", Meaning: "A tall animal with a long neck", Difficulty: "medium"},
			{Text: "elephant", Meaning: "A large animal with a trunk", Difficulty: "medium"},
			{Text: "cheetah", Meaning: "The fastest land animal", Difficulty: "hard"},
			{Text: "kangaroo", Meaning: "An Australian animal that hops and has a pouch", Difficulty: "hard"},
			{Text: "dolphin", Meaning: "A smart, aquatic mammal", Difficulty: "hard"},
			{Text: "penguin", Meaning: "A bird that cannot fly but swims", Difficulty: "hard"},
			{Text: "octopus", Meaning: "An eight-legged sea creature", Difficulty: "hard"},
			{Text: "lizard", Meaning: "A reptile with scales", Difficulty: "hard"},
			{Text: "spider", Meaning: "An arachnid with eight legs", Difficulty: "hard"},
			{Text: "turtle", Meaning: "A reptile with a hard shell", Difficulty: "hard"},
			{Text: "gorilla", Meaning: "A large, powerful ape", Difficulty: "hard"},
			{Text: "rhino", Meaning: "A large animal with a horn on its nose", Difficulty: "hard"},
			{Text: "hippo", Meaning: "A large African animal that loves water", Difficulty: "hard"},
			{Text: "jaguar", Meaning: "A big cat found in the Americas", Difficulty: "hard"},
			{Text: "leopard", Meaning: "A spotted big cat", Difficulty: "hard"},
			{Text: "hyena", Meaning: "A laughing scavenger animal", Difficulty: "hard"},
			{Text: "platypus", Meaning: "An egg-laying mammal with a duck bill", Difficulty: "hard"},
			{Text: "chameleon", Meaning: "A lizard that changes color", Difficulty: "hard"},
		},
	},
	{
		Name:        "Technology",
		Description: "Modern technology and computing terms",
		Words: []wordSeed{
			{Text: "app", Meaning: "A program on your phone", Difficulty: "easy"},
			{Text: "code", Meaning: "Instructions for a computer", Difficulty: "easy"},
			{Text: "web", Meaning: "The 'W W W' in a URL", Difficulty: "easy"},
			{Text: "wifi", Meaning: "Wireless internet connection", Difficulty: "easy"},
			{Text: "site", Meaning: "A location on the internet", Difficulty: "easy"},
			{Text: "data", Meaning: "Information stored by a computer", Difficulty: "easy"},
			{Text: "icon", Meaning: "A small picture you click on", Difficulty: "easy"},
			{Text: "user", Meaning: "A person using a computer", Difficulty: "easy"},
			{Text: "link", Meaning: "A clickable connection to another page", Difficulty: "easy"},
			{Text: "file", Meaning: "A document stored on a computer", Difficulty: "easy"},
			{Text: "boot", Meaning: "To start up a computer", Difficulty: "easy"},
			{Text: "chat", Meaning: "To talk online", Difficulty: "easy"},
			{Text: "game", Meaning: "An interactive digital entertainment", Difficulty: "easy"},
			{Text: "key", Meaning: "A button on a keyboard", Difficulty: "easy"},
			{Text: "cloud", Meaning: "Online storage", Difficulty: "easy"},
			{Text: "email", Meaning: "Digital mail", Difficulty: "easy"},
			{Text: "phone", Meaning: "A mobile communication device", Difficulty: "easy"},
			{Text: "mouse", Meaning: "A device to move the cursor", Difficulty: "medium"},
			{Text: "server", Meaning: "A central computer that serves data", Difficulty: "medium"},
			{Text: "binary", Meaning: "A number system of 0s and 1s", Difficulty: "medium"},
			{Text: "cookie", Meaning: "Data a website stores on your computer", Difficulty: "medium"},
			{Text: "cache", Meaning: "A temporary storage for data", Difficulty: "medium"},
			{Text: "domain", Meaning: "A website's name (e.g., google.com)", Difficulty: "medium"},
			{Text: "folder", Meaning: "A digital container for files", Difficulty: "medium"},
			{Text: "keyboard", Meaning: "A device used for typing", Difficulty: "medium"},
			{Text: "laptop", Meaning: "A portable computer", Difficulty: "medium"},
			{Text: "memory", Meaning: "A computer's short-term data storage (RAM)", Difficulty: "medium"},
			{Text: "screen", Meaning: "The display of a computer or phone", Difficulty: "medium"},
			{Text: "plugin", Meaning: "A small program that adds features", Difficulty: "medium"},
			{Text: "robot", Meaning: "A machine that performs tasks", Difficulty: "medium"},
			{Text: "search", Meaning: "To look for information online", Difficulty: "medium"},
			{Text: "pixel", Meaning: "A single point of light on a screen", Difficulty: "medium"},
			{Text: "virus", Meaning: "Harmful software", Difficulty: "medium"},
			{Text: "smart", Meaning: "A device connected to the internet", Difficulty: "medium"},
			{Text: "algorithm", Meaning: "A set of rules for a computer to follow", Difficulty: "hard"},
			{Text: "database", Meaning: "An organized collection of data", Difficulty: "hard"},
			{Text: "encryption", Meaning: "The process of encoding information", Difficulty: "hard"},
			{Text: "firewall", Meaning: "A security system for a network", Difficulty: "hard"},
			{Text: "hardware", Meaning: "The physical parts of a computer", Difficulty: "hard"},
			{Text: "software", Meaning: "The programs on a computer", Difficulty: "hard"},
			{Text: "internet", Meaning: "A global network of computers", Difficulty: "hard"},
			{Text: "bandwidth", Meaning: "The amount of data that can be transferred", Difficulty: "hard"},
			{Text: "processor", Meaning: "The 'brain' of the computer (CPU)", Difficulty: "hard"},
			{Text: "router", Meaning: "A device that directs internet traffic", Difficulty: "hard"},
			{Text: "protocol", Meaning: "A set of rules for data communication (e.g., HTTP)", Difficulty: "hard"},
			{Text: "javascript", Meaning: "A popular programming language for the web", Difficulty: "hard"},
			{Text: "python", Meaning: "A versatile, high-level programming language", Difficulty: "hard"},
			{Text: "authentication", Meaning: "The process of verifying who a user is", Difficulty: "hard"},
			{Text: "blockchain", Meaning: "A decentralized, distributed ledger system", Difficulty: "hard"},
			{Text: "cryptocurrency", Meaning: "A digital currency, like Bitcoin", Difficulty: "hard"},
		},
	},
	{
		Name:        "Nature",
		Description: "Natural world and environmental terms",
		Words: []wordSeed{
			{Text: "sun", Meaning: "The star at the center of our solar system", Difficulty: "easy"},
			{Text: "moon", Meaning: "The natural satellite of the Earth", Difficulty: "easy"},
			{Text: "star", Meaning: "A bright point of light in the night sky", Difficulty: "easy"},
			{Text: "sky", Meaning: "The atmosphere above the Earth", Difficulty: "easy"},
			{Text: "tree", Meaning: "A tall plant with a trunk and branches", Difficulty: "easy"},
			{Text: "flower", Meaning: "The reproductive part of a plant", Difficulty: "easy"},
			{Text: "rain", Meaning: "Water falling from the clouds", Difficulty: "easy"},
			{Text: "snow", Meaning: "Frozen water crystals that fall from the sky", Difficulty: "easy"},
			{Text: "wind", Meaning: "Moving air", Difficulty: "easy"},
			{Text: "river", Meaning: "A large natural stream of water", Difficulty: "easy"},
			{Text: "lake", Meaning: "A large body of water surrounded by land", Difficulty: "easy"},
			{Text: "hill", Meaning: "A small mountain", Difficulty: "easy"},
			{Text: "leaf", Meaning: "Part of a plant, usually green", Difficulty: "easy"},
			{Text: "rock", Meaning: "A hard, solid mineral material", Difficulty: "easy"},
			{Text: "sand", Meaning: "Tiny grains of rock, found on beaches", Difficulty: "easy"},
			{Text: "sea", Meaning: "A large body of salt water", Difficulty: "easy"},
			{Text: "ice", Meaning: "Frozen water", Difficulty: "easy"},
			{Text: "ocean", Meaning: "A very large sea", Difficulty: "medium"},
			{Text: "forest", Meaning: "A large area covered with trees", Difficulty: "medium"},
			{Text: "jungle", Meaning: "A dense, tropical forest", Difficulty: "medium"},
			{Text: "desert", Meaning: "A dry, sandy region", Difficulty: "medium"},
			{Text: "mountain", Meaning: "A very high hill", Difficulty: "medium"},
			{Text: "volcano", Meaning: "A mountain that can erupt with lava", Difficulty: "medium"},
			{Text: "island", Meaning: "A piece of land surrounded by water", Difficulty: "medium"},
			{Text: "beach", Meaning: "A sandy or pebbly shore", Difficulty: "medium"},
			{Text: "cave", Meaning: "A large underground chamber", Difficulty: "medium"},
			{Text: "cloud", Meaning: "A visible mass of water droplets in the sky", Difficulty: "medium"},
			{Text: "valley", Meaning: "A low area of land between hills or mountains", Difficulty: "medium"},
			{Text: "storm", Meaning: "A period of bad weather with strong winds and rain", Difficulty: "medium"},
			{Text: "plant", Meaning: "A living organism that grows in the earth", Difficulty: "medium"},
			{Text: "root", Meaning: "The part of a plant that grows underground", Difficulty: "medium"},
			{Text: "grass", Meaning: "A common plant with green blades", Difficulty: "medium"},
			{Text: "planet", Meaning: "A large celestial body orbiting a star", Difficulty: "medium"},
			{Text: "comet", Meaning: "A celestial body with a tail of gas and dust", Difficulty: "medium"},
			{Text: "earthquake", Meaning: "A sudden shaking of the ground", Difficulty: "hard"},
			{Text: "hurricane", Meaning: "A severe tropical storm with strong winds", Difficulty: "hard"},
			{Text: "tornado", Meaning: "A destructive, rotating column of air", Difficulty: "hard"},
			{Text: "tsunami", Meaning: "A giant wave caused by an earthquake", Difficulty: "hard"},
			{Text: "glacier", Meaning: "A large, slow-moving river of ice", Difficulty: "hard"},
			{Text: "canyon", Meaning: "A deep gorge, often with a river", Difficulty: "hard"},
			{Text: "waterfall", Meaning: "A cascade of water falling from a height", Difficulty: "hard"},
			{Text: "atmosphere", Meaning: "The gases surrounding the Earth", Difficulty: "hard"},
			{Text: "ecosystem", Meaning: "A community of living organisms", Difficulty: "hard"},
			{Text: "environment", Meaning: "The natural world or surroundings", Difficulty: "hard"},
			{Text: "horizon", Meaning: "The line where the sky and Earth appear to meet", Difficulty: "hard"},
			{Text: "lightning", Meaning: "An electrical discharge in the sky", Difficulty: "hard"},
			{Text: "nebula", Meaning: "A cloud of gas and dust in space", Difficulty: "hard"},
			{Text: "galaxy", Meaning: "A system of millions or billions of stars", Difficulty: "hard"},
			{Text: "aurora", Meaning: "Natural light display in the sky (e.g., Northern Lights)", Difficulty: "hard"},
			{Text: "monsoon", Meaning: "A seasonal prevailing wind in South and Southeast Asia", Difficulty: "hard"},
		},
	},
	{
		Name:        "Food",
		Description: "Food, cooking, and culinary terms",
		Words: []wordSeed{
			{Text: "apple", Meaning: "A round fruit, often red or green", Difficulty: "easy"},
			{Text: "bread", Meaning: "A baked food made from flour and water", Difficulty: "easy"},
			{Text: "cheese", Meaning: "A food made from pressed milk curds", Difficulty: "easy"},
			{Text: "milk", Meaning: "A white liquid produced by mammals", Difficulty: "easy"},
			{Text: "egg", Meaning: "An oval-shaped food from a bird, usually a chicken", Difficulty: "easy"},
			{Text: "cake", Meaning: "A sweet baked good", Difficulty: "easy"},
			{Text: "rice", Meaning: "A grain used as a staple food", Difficulty: "easy"},
			{Text: "soup", Meaning: "A liquid dish, typically savory", Difficulty: "easy"},
			{Text: "fish", Meaning: "An animal that swims, cooked as food", Difficulty: "easy"},
			{Text: "meat", Meaning: "Animal flesh eaten as food", Difficulty: "easy"},
			{Text: "salt", Meaning: "A white mineral used to flavor food", Difficulty: "easy"},
			{Text: "sugar", Meaning: "A sweet crystalline substance", Difficulty: "easy"},
			{Text: "tea", Meaning: "A hot drink made from steeped leaves", Difficulty: "easy"},
			{Text: "juice", Meaning: "The liquid from fruit or vegetables", Difficulty: "easy"},
			{Text: "grape", Meaning: "A small, round fruit, often green or purple", Difficulty: "easy"},
			{Text: "pear", Meaning: "A fruit with a sweet, soft flesh", Difficulty: "easy"},
			{Text: "bean", Meaning: "A seed, or the pod, of a plant used as a vegetable", Difficulty: "easy"},
			{Text: "banana", Meaning: "A long, curved yellow fruit", Difficulty: "medium"},
			{Text: "orange", Meaning: "A round, citrus fruit", Difficulty: "medium"},
			{Text: "potato", Meaning: "A starchy root vegetable", Difficulty: "medium"},
			{Text: "tomato", Meaning: "A red fruit, often used as a vegetable", Difficulty: "medium"},
			{Text: "onion", Meaning: "A vegetable with strong-smelling layers", Difficulty: "medium"},
			{Text: "garlic", Meaning: "A plant bulb with a strong, pungent flavor", Difficulty: "medium"},
			{Text: "carrot", Meaning: "An orange root vegetable", Difficulty: "medium"},
			{Text: "lettuce", Meaning: "A leafy green vegetable used in salads", Difficulty: "medium"},
			{Text: "chicken", Meaning: "A type of poultry", Difficulty: "medium"},
			{Text: "beef", Meaning: "Meat from a cow", Difficulty: "medium"},
			{Text: "pork", Meaning: "Meat from a pig", Difficulty: "medium"},
			{Text: "pasta", Meaning: "An Italian dish made from dough", Difficulty: "medium"},
			{Text: "pizza", Meaning: "A baked dish with toppings on a round crust", Difficulty: "medium"},
			{Text: "burger", Meaning: "A ground meat patty, often in a bun", Difficulty: "medium"},
			{Text: "coffee", Meaning: "A hot drink made from roasted beans", Difficulty: "medium"},
			{Text: "butter", Meaning: "A yellow fat made from cream", Difficulty: "medium"},
			{Text: "cookie", Meaning: "A small, sweet baked good", Difficulty: "medium"},
			{Text: "chocolate", Meaning: "A sweet food made from cacao beans", Difficulty: "hard"},
			{Text: "strawberry", Meaning: "A sweet, red fruit with seeds on the outside", Difficulty: "hard"},
			{Text: "pineapple", Meaning: "A tropical fruit with a tough, spiky skin", Difficulty: "hard"},
			{Text: "watermelon", Meaning: "A large, green fruit with red, juicy flesh", Difficulty: "hard"},
			{Text: "cucumber", Meaning: "A green vegetable, long and cylindrical", Difficulty: "hard"},
			{Text: "broccoli", Meaning: "A green vegetable with a flowering head", Difficulty: "hard"},
			{Text: "spinach", Meaning: "A leafy green vegetable", Difficulty: "hard"},
			{Text: "mushroom", Meaning: "A type of fungus, used in cooking", Difficulty: "hard"},
			{Text: "avocado", Meaning: "A fruit with green skin and a large pit", Difficulty: "hard"},
			{Text: "spaghetti", Meaning: "A type of long, thin pasta", Difficulty: "hard"},
			{Text: "lasagna", Meaning: "An Italian dish with layers of pasta, cheese, and sauce", Difficulty: "hard"},
			{Text: "sandwich", Meaning: "Food with fillings between two slices of bread", Difficulty: "hard"},
			{Text: "croissant", Meaning: "A flaky, crescent-shaped pastry", Difficulty: "hard"},
			{Text: "sushi", Meaning: "A Japanese dish of rice, fish, and seaweed", Difficulty: "hard"},
			{Text: "paella", Meaning: "A Spanish rice dish with saffron and seafood", Difficulty: "hard"},
			{Text: "bouillabaisse", Meaning: "A traditional French fish stew", Difficulty: "hard"},
		},
	},
	{
		Name:        "Science",
		Description: "Scientific concepts and terminology",
		Words: []wordSeed{
			{Text: "atom", Meaning: "The smallest unit of matter", Difficulty: "easy"},
			{Text: "gas", Meaning: "A state of matter, like air", Difficulty: "easy"},
			{Text: "ice", Meaning: "The solid state of water", Difficulty: "easy"},
			{Text: "lab", Meaning: "A place for scientific experiments", Difficulty: "easy"},
			{Text: "mass", Meaning: "The amount of matter in an object", Difficulty: "easy"},
			{Text: "sun", Meaning: "The star our planet orbits", Difficulty: "easy"},
			{Text: "moon", Meaning: "Earth's natural satellite", Difficulty: "easy"},
			{Text: "star", Meaning: "A bright celestial body", Difficulty: "easy"},
			{Text: "heat", Meaning: "A form of energy", Difficulty: "easy"},
			{Text: "light", Meaning: "What allows us to see", Difficulty: "easy"},
			{Text: "water", Meaning: "H2O", Difficulty: "easy"},
			{Text: "acid", Meaning: "A substance with a pH less than 7", Difficulty: "easy"},
			{Text: "base", Meaning: "A substance with a pH greater than 7", Difficulty: "easy"},
			{Text: "DNA", Meaning: "The molecule that carries genetic information", Difficulty: "easy"},
			{Text: "cell", Meaning: "The basic unit of life", Difficulty: "easy"},
			{Text: "gene", Meaning: "A unit of heredity", Difficulty: "easy"},
			{Text: "lava", Meaning: "Molten rock from a volcano", Difficulty: "easy"},
			{Text: "energy", Meaning: "The power to do work", Difficulty: "medium"},
			{Text: "force", Meaning: "A push or a pull", Difficulty: "medium"},
			{Text: "gravity", Meaning: "The force that pulls objects down", Difficulty: "medium"},
			{Text: "magnet", Meaning: "An object that produces a magnetic field", Difficulty: "medium"},
			{Text: "planet", Meaning: "A celestial body orbiting a star (e.g., Earth)", Difficulty: "medium"},
			{Text: "space", Meaning: "The boundless, three-dimensional extent", Difficulty: "medium"},
			{Text: "sound", Meaning: "Vibrations that travel through the air", Difficulty: "medium"},
			{Text: "liquid", Meaning: "A state of matter, like water", Difficulty: "medium"},
			{Text: "solid", Meaning: "A state of matter, like ice", Difficulty: "medium"},
			{Text: "fossil", Meaning: "The preserved remains of an ancient organism", Difficulty: "medium"},
			{Text: "brain", Meaning: "The organ in your head", Difficulty: "medium"},
			{Text: "heart", Meaning: "The organ that pumps blood", Difficulty: "medium"},
			{Text: "blood", Meaning: "The red liquid in your veins", Difficulty: "medium"},
			{Text: "virus", Meaning: "A small infectious agent", Difficulty: "medium"},
			{Text: "bacteria", Meaning: "Single-celled microorganisms", Difficulty: "medium"},
			{Text: "oxygen", Meaning: "The gas we breathe", Difficulty: "medium"},
			{Text: "carbon", Meaning: "A chemical element, the basis of life", Difficulty: "medium"},
			{Text: "molecule", Meaning: "A group of atoms bonded together", Difficulty: "hard"},
			{Text: "electron", Meaning: "A negatively charged subatomic particle", Difficulty: "hard"},
			{Text: "proton", Meaning: "A positively charged subatomic particle", Difficulty: "hard"},
			{Text: "neutron", Meaning: "A subatomic particle with no charge", Difficulty: "hard"},
			{Text: "nucleus", Meaning: "The center of an atom", Difficulty: "hard"},
			{Text: "velocity", Meaning: "Speed in a given direction", Difficulty: "hard"},
			{Text: "photosynthesis", Meaning: "The process plants use to make food", Difficulty: "hard"},
			{Text: "evolution", Meaning: "The process of change over time in living organisms", Difficulty: "hard"},
			{Text: "chromosome", Meaning: "A structure in the cell nucleus that carries genes", Difficulty: "hard"},
			{Text: "galaxy", Meaning: "A large system of stars", Difficulty: "hard"},
			{Text: "asteroid", Meaning: "A small rocky body orbiting the sun", Difficulty: "hard"},
			{Text: "blackhole", Meaning: "An object in space with gravity so strong, not even light can escape", Difficulty: "hard"},
			{Text: "metabolism", Meaning: "The chemical processes in a living organism", Difficulty: "hard"},
			{Text: "catalyst", Meaning: "A substance that speeds up a chemical reaction", Difficulty: "hard"},
			{Text: "enzyme", Meaning: "A biological catalyst", Difficulty: "hard"},
			{Text: "thermodynamics", Meaning: "The branch of physics dealing with heat and energy", Difficulty: "hard"},
		},
	},
}
