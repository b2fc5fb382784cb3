package knowledge

import "fmt"

func kp(topicID string, level int, title, description string) KnowledgePoint {
	return KnowledgePoint{
		ID:          fmt.Sprintf("%s-kp%d", topicID, level),
		TopicID:     topicID,
		Level:       level,
		Title:       title,
		Description: description,
	}
}

func topic(id, name, description string, category Category, emoji string, kpTitles, kpDescs [3]string, prereqs ...Edge) Topic {
	return Topic{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Emoji:       emoji,
		KnowledgePoints: [3]KnowledgePoint{
			kp(id, 1, kpTitles[0], kpDescs[0]),
			kp(id, 2, kpTitles[1], kpDescs[1]),
			kp(id, 3, kpTitles[2], kpDescs[2]),
		},
		Prerequisites: prereqs,
	}
}

var wholeNumberTopics = []Topic{
	topic("addition-basics", "Addition",
		"Adding whole numbers together",
		CategoryWholeNumbers, "➕",
		[3]string{"Single-Digit Addition", "Multi-Digit Addition", "Addition Word Problems"},
		[3]string{
			"Add numbers 0-9",
			"Add numbers with carrying (regrouping)",
			"Solve real-world addition problems",
		}),
	topic("subtraction-basics", "Subtraction",
		"Subtracting whole numbers",
		CategoryWholeNumbers, "➖",
		[3]string{"Single-Digit Subtraction", "Multi-Digit Subtraction", "Subtraction Word Problems"},
		[3]string{
			"Subtract numbers 0-9",
			"Subtract with borrowing (regrouping)",
			"Solve real-world subtraction problems",
		},
		Edge{TopicID: "addition-basics", Weight: 0.3}),
	topic("multiplication-basics", "Multiplication",
		"Multiplying whole numbers",
		CategoryWholeNumbers, "✖️",
		[3]string{"Times Tables", "Multi-Digit Multiplication", "Multiplication Word Problems"},
		[3]string{
			"Recall times tables through 12x12",
			"Multiply multi-digit numbers",
			"Solve real-world multiplication problems",
		},
		Edge{TopicID: "addition-basics", Weight: 0.4}),
	topic("division-basics", "Division",
		"Dividing whole numbers",
		CategoryWholeNumbers, "➗",
		[3]string{"Basic Division Facts", "Long Division", "Division Word Problems"},
		[3]string{
			"Divide using multiplication facts",
			"Perform long division with remainders",
			"Solve real-world division problems",
		},
		Edge{TopicID: "multiplication-basics", Weight: 0.5},
		Edge{TopicID: "subtraction-basics", Weight: 0.2}),
	topic("factors-multiples", "Factors & Multiples",
		"Finding factors, multiples, primes, and composites",
		CategoryWholeNumbers, "🔢",
		[3]string{"Factors & Divisibility", "Multiples & LCM", "Prime & Composite Numbers"},
		[3]string{
			"List factors and use divisibility rules",
			"Find multiples and least common multiples",
			"Identify prime and composite numbers",
		},
		Edge{TopicID: "multiplication-basics", Weight: 0.3},
		Edge{TopicID: "division-basics", Weight: 0.3}),
	topic("order-of-operations", "Order of Operations",
		"Using PEMDAS to evaluate expressions",
		CategoryWholeNumbers, "📋",
		[3]string{"PEMDAS Basics", "Expressions with Parentheses", "Multi-Step Expressions"},
		[3]string{
			"Apply the correct order: multiply/divide before add/subtract",
			"Evaluate expressions with parentheses first",
			"Solve complex multi-step expressions",
		},
		Edge{TopicID: "multiplication-basics", Weight: 0.3},
		Edge{TopicID: "division-basics", Weight: 0.3},
		Edge{TopicID: "addition-basics", Weight: 0.2},
		Edge{TopicID: "subtraction-basics", Weight: 0.2}),
	topic("exponents-intro", "Exponents",
		"Understanding powers and squared/cubed numbers",
		CategoryWholeNumbers, "⬆️",
		[3]string{"Squares & Cubes", "Evaluating Powers", "Exponent Expressions"},
		[3]string{
			"Calculate squares and cubes of small numbers",
			"Evaluate expressions like 2^5",
			"Simplify expressions containing exponents",
		},
		Edge{TopicID: "multiplication-basics", Weight: 0.4}),
	topic("negative-integers", "Negative Integers",
		"Working with numbers below zero",
		CategoryWholeNumbers, "🌡️",
		[3]string{"Number Line & Negatives", "Adding & Subtracting Integers", "Multiplying & Dividing Integers"},
		[3]string{
			"Place negative numbers on a number line",
			"Add and subtract positive and negative integers",
			"Multiply and divide integers",
		},
		Edge{TopicID: "addition-basics", Weight: 0.3},
		Edge{TopicID: "subtraction-basics", Weight: 0.3},
		Edge{TopicID: "multiplication-basics", Weight: 0.2}),
}

var fractionTopics = []Topic{
	topic("fractions-intro", "Understanding Fractions",
		"What fractions mean and how to read them",
		CategoryFractions, "🍕",
		[3]string{"Parts of a Whole", "Equivalent Fractions", "Comparing Fractions"},
		[3]string{
			"Identify numerator, denominator, and what fractions represent",
			"Find equivalent fractions by multiplying/dividing",
			"Compare fractions using common denominators or cross-multiplication",
		},
		Edge{TopicID: "division-basics", Weight: 0.2}),
	topic("fractions-add-sub", "Adding & Subtracting Fractions",
		"Add and subtract fractions with like and unlike denominators",
		CategoryFractions, "🧮",
		[3]string{"Like Denominators", "Unlike Denominators", "Mixed Numbers"},
		[3]string{
			"Add and subtract fractions with the same denominator",
			"Find common denominators and add/subtract",
			"Add and subtract mixed numbers",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.5},
		Edge{TopicID: "factors-multiples", Weight: 0.3}),
	topic("fractions-multiply", "Multiplying Fractions",
		"Multiply fractions and mixed numbers",
		CategoryFractions, "✨",
		[3]string{"Fraction × Fraction", "Fraction × Whole Number", "Mixed Number Multiplication"},
		[3]string{
			"Multiply two fractions (numerator × numerator, denominator × denominator)",
			"Multiply a fraction by a whole number",
			"Convert mixed numbers and multiply",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.4},
		Edge{TopicID: "multiplication-basics", Weight: 0.3}),
	topic("fractions-divide", "Dividing Fractions",
		"Divide fractions using reciprocals",
		CategoryFractions, "🔄",
		[3]string{"Reciprocals", "Fraction ÷ Fraction", "Mixed Number Division"},
		[3]string{
			"Find the reciprocal of a fraction",
			"Divide fractions by multiplying by the reciprocal",
			"Divide mixed numbers",
		},
		Edge{TopicID: "fractions-multiply", Weight: 0.5},
		Edge{TopicID: "division-basics", Weight: 0.3}),
	topic("simplifying-fractions", "Simplifying Fractions",
		"Reduce fractions to lowest terms using GCF",
		CategoryFractions, "✂️",
		[3]string{"Finding GCF", "Reducing to Lowest Terms", "Simplifying in Context"},
		[3]string{
			"Find the greatest common factor of two numbers",
			"Divide numerator and denominator by GCF",
			"Simplify fractions within word problems",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.4},
		Edge{TopicID: "factors-multiples", Weight: 0.5}),
}

var decimalTopics = []Topic{
	topic("decimals-intro", "Understanding Decimals",
		"Place value and reading decimal numbers",
		CategoryDecimals, "📍",
		[3]string{"Decimal Place Value", "Comparing Decimals", "Rounding Decimals"},
		[3]string{
			"Identify tenths, hundredths, thousandths places",
			"Compare and order decimal numbers",
			"Round decimals to a given place",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.3}),
	topic("decimals-add-sub", "Adding & Subtracting Decimals",
		"Line up decimal points and compute",
		CategoryDecimals, "🔵",
		[3]string{"Adding Decimals", "Subtracting Decimals", "Decimal Word Problems"},
		[3]string{
			"Add decimals by aligning place values",
			"Subtract decimals by aligning place values",
			"Solve real-world decimal addition/subtraction problems",
		},
		Edge{TopicID: "decimals-intro", Weight: 0.5},
		Edge{TopicID: "addition-basics", Weight: 0.2},
		Edge{TopicID: "subtraction-basics", Weight: 0.2}),
	topic("decimals-multiply", "Multiplying Decimals",
		"Multiply decimals and count decimal places",
		CategoryDecimals, "🟢",
		[3]string{"Decimal × Whole Number", "Decimal × Decimal", "Placement of Decimal Point"},
		[3]string{
			"Multiply a decimal by a whole number",
			"Multiply two decimals together",
			"Determine the correct position of the decimal point",
		},
		Edge{TopicID: "decimals-intro", Weight: 0.4},
		Edge{TopicID: "multiplication-basics", Weight: 0.3}),
	topic("decimals-divide", "Dividing Decimals",
		"Divide with decimals in the dividend and divisor",
		CategoryDecimals, "🟡",
		[3]string{"Decimal ÷ Whole Number", "Whole Number ÷ Decimal", "Decimal ÷ Decimal"},
		[3]string{
			"Divide a decimal by a whole number",
			"Divide a whole number by a decimal",
			"Divide two decimals by shifting the decimal point",
		},
		Edge{TopicID: "decimals-multiply", Weight: 0.3},
		Edge{TopicID: "division-basics", Weight: 0.4}),
	topic("fraction-decimal-conversion", "Fractions ↔ Decimals",
		"Convert between fractions and decimals",
		CategoryDecimals, "🔀",
		[3]string{"Fraction → Decimal", "Decimal → Fraction", "Repeating Decimals"},
		[3]string{
			"Convert a fraction to a decimal by dividing",
			"Convert a terminating decimal to a fraction",
			"Recognize and convert repeating decimals",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.4},
		Edge{TopicID: "decimals-intro", Weight: 0.4},
		Edge{TopicID: "division-basics", Weight: 0.2}),
}

var percentageTopics = []Topic{
	topic("percentages-intro", "Understanding Percentages",
		"What percentages mean and common conversions",
		CategoryPercentages, "💯",
		[3]string{"Percent Meaning", "Common Percent ↔ Fraction ↔ Decimal", "Comparing with Percentages"},
		[3]string{
			"Understand that percent means 'out of 100'",
			"Convert between common percentages, fractions, and decimals",
			"Use percentages to compare quantities",
		},
		Edge{TopicID: "fraction-decimal-conversion", Weight: 0.5}),
	topic("finding-percent-of", "Finding a Percent of a Number",
		"Calculate a percentage of a given number",
		CategoryPercentages, "🎯",
		[3]string{"Percent of a Number", "Discount & Tax", "Tip & Markup"},
		[3]string{
			"Calculate a percentage of a number (e.g., 25% of 80)",
			"Find sale prices and tax amounts",
			"Calculate tips and markups",
		},
		Edge{TopicID: "percentages-intro", Weight: 0.5},
		Edge{TopicID: "decimals-multiply", Weight: 0.3}),
	topic("percent-change", "Percent Increase & Decrease",
		"Calculate how much something went up or down in percentage terms",
		CategoryPercentages, "📈",
		[3]string{"Percent Increase", "Percent Decrease", "Real-World Percent Change"},
		[3]string{
			"Calculate percent increase",
			"Calculate percent decrease",
			"Apply percent change to sports stats, prices, and scores",
		},
		Edge{TopicID: "finding-percent-of", Weight: 0.5},
		Edge{TopicID: "subtraction-basics", Weight: 0.1}),
}

var ratioTopics = []Topic{
	topic("ratios-intro", "Understanding Ratios",
		"Comparing quantities using ratios",
		CategoryRatios, "⚖️",
		[3]string{"Writing Ratios", "Equivalent Ratios", "Ratio Tables"},
		[3]string{
			"Write ratios in three forms (a:b, a/b, a to b)",
			"Find equivalent ratios by scaling",
			"Complete and use ratio tables",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.3},
		Edge{TopicID: "multiplication-basics", Weight: 0.2}),
	topic("unit-rates", "Unit Rates",
		"Find and use rates per one unit",
		CategoryRatios, "🏎️",
		[3]string{"Finding Unit Rates", "Comparing Unit Rates", "Unit Rate Word Problems"},
		[3]string{
			"Calculate a rate per one unit (e.g., miles per hour)",
			"Compare unit rates to find the better deal",
			"Solve real-world unit rate problems",
		},
		Edge{TopicID: "ratios-intro", Weight: 0.4},
		Edge{TopicID: "division-basics", Weight: 0.3}),
	topic("proportions", "Proportions",
		"Solving proportional relationships",
		CategoryRatios, "🔗",
		[3]string{"Setting Up Proportions", "Cross-Multiplication", "Proportion Word Problems"},
		[3]string{
			"Write a proportion from a word problem",
			"Solve proportions using cross-multiplication",
			"Apply proportions to maps, recipes, and scale models",
		},
		Edge{TopicID: "unit-rates", Weight: 0.4},
		Edge{TopicID: "fractions-multiply", Weight: 0.2}),
}

var geometryTopics = []Topic{
	topic("angles-intro", "Angles",
		"Types and measurement of angles",
		CategoryGeometry, "📐",
		[3]string{"Types of Angles", "Measuring Angles", "Angle Relationships"},
		[3]string{
			"Identify acute, right, obtuse, and straight angles",
			"Estimate and measure angles in degrees",
			"Find missing angles using supplementary and complementary relationships",
		},
		Edge{TopicID: "addition-basics", Weight: 0.1},
		Edge{TopicID: "subtraction-basics", Weight: 0.1}),
	topic("perimeter", "Perimeter",
		"Finding the distance around shapes",
		CategoryGeometry, "🔲",
		[3]string{"Perimeter of Rectangles", "Perimeter of Irregular Shapes", "Perimeter Word Problems"},
		[3]string{
			"Calculate perimeter of rectangles and squares",
			"Find perimeter of composite/irregular shapes",
			"Solve real-world perimeter problems",
		},
		Edge{TopicID: "addition-basics", Weight: 0.3}),
	topic("area-rectangles", "Area of Rectangles",
		"Length × width and square units",
		CategoryGeometry, "⬜",
		[3]string{"Area Formula", "Area of Composite Shapes", "Area Word Problems"},
		[3]string{
			"Use length × width to find area",
			"Break composite shapes into rectangles and add areas",
			"Solve real-world area problems",
		},
		Edge{TopicID: "multiplication-basics", Weight: 0.4}),
	topic("area-triangles", "Area of Triangles",
		"Half base times height",
		CategoryGeometry, "🔺",
		[3]string{"Triangle Area Formula", "Finding Missing Dimensions", "Triangle Word Problems"},
		[3]string{
			"Apply 1/2 × base × height",
			"Find a missing base or height given the area",
			"Solve real-world triangle area problems",
		},
		Edge{TopicID: "area-rectangles", Weight: 0.4},
		Edge{TopicID: "fractions-multiply", Weight: 0.2}),
	topic("area-circles", "Area & Circumference of Circles",
		"Using π to find circle measurements",
		CategoryGeometry, "⭕",
		[3]string{"Circumference (πd)", "Area (πr²)", "Circle Word Problems"},
		[3]string{
			"Calculate circumference using C = πd",
			"Calculate area using A = πr²",
			"Solve real-world circle problems",
		},
		Edge{TopicID: "decimals-multiply", Weight: 0.3},
		Edge{TopicID: "exponents-intro", Weight: 0.2}),
	topic("volume-intro", "Volume",
		"Measuring 3D space in cubic units",
		CategoryGeometry, "📦",
		[3]string{"Volume of Rectangular Prisms", "Volume of Composite Solids", "Volume Word Problems"},
		[3]string{
			"Use length × width × height",
			"Find volume of composite rectangular solids",
			"Solve real-world volume problems",
		},
		Edge{TopicID: "area-rectangles", Weight: 0.4},
		Edge{TopicID: "multiplication-basics", Weight: 0.3}),
	topic("coordinate-plane", "Coordinate Plane",
		"Plotting and reading points on a grid",
		CategoryGeometry, "📊",
		[3]string{"Ordered Pairs", "Plotting Points", "Distance on the Grid"},
		[3]string{
			"Read and write ordered pairs (x, y)",
			"Plot points in all four quadrants",
			"Find distances between points on the grid",
		},
		Edge{TopicID: "negative-integers", Weight: 0.3},
		Edge{TopicID: "addition-basics", Weight: 0.1}),
}

var algebraTopics = []Topic{
	topic("variables-expressions", "Variables & Expressions",
		"Using letters to represent unknown numbers",
		CategoryAlgebra, "🔤",
		[3]string{"What Variables Mean", "Evaluating Expressions", "Writing Expressions"},
		[3]string{
			"Understand that a variable stands for an unknown value",
			"Substitute a number for a variable and evaluate",
			"Translate words into algebraic expressions",
		},
		Edge{TopicID: "order-of-operations", Weight: 0.4}),
	topic("one-step-equations", "One-Step Equations",
		"Solving equations with one operation",
		CategoryAlgebra, "⚡",
		[3]string{"Addition/Subtraction Equations", "Multiplication/Division Equations", "Equation Word Problems"},
		[3]string{
			"Solve x + a = b and x - a = b",
			"Solve ax = b and x/a = b",
			"Write and solve one-step equations from word problems",
		},
		Edge{TopicID: "variables-expressions", Weight: 0.5},
		Edge{TopicID: "division-basics", Weight: 0.2}),
	topic("two-step-equations", "Two-Step Equations",
		"Solving equations with two operations",
		CategoryAlgebra, "🪜",
		[3]string{"Solving 2-Step Equations", "Equations with Fractions", "Two-Step Word Problems"},
		[3]string{
			"Solve equations like 2x + 3 = 11",
			"Solve two-step equations involving fractions",
			"Write and solve two-step equations from word problems",
		},
		Edge{TopicID: "one-step-equations", Weight: 0.5},
		Edge{TopicID: "fractions-add-sub", Weight: 0.2}),
	topic("inequalities-intro", "Inequalities",
		"Working with greater than and less than",
		CategoryAlgebra, "↔️",
		[3]string{"Writing Inequalities", "Solving One-Step Inequalities", "Graphing on a Number Line"},
		[3]string{
			"Write inequalities using <, >, <=, >=",
			"Solve one-step inequalities",
			"Graph solutions on a number line",
		},
		Edge{TopicID: "one-step-equations", Weight: 0.4},
		Edge{TopicID: "negative-integers", Weight: 0.2}),
	topic("patterns-sequences", "Patterns & Sequences",
		"Identifying and extending number patterns",
		CategoryAlgebra, "🔁",
		[3]string{"Arithmetic Sequences", "Pattern Rules", "Input-Output Tables"},
		[3]string{
			"Find the next terms in an arithmetic sequence",
			"Write a rule for a pattern (e.g., 'add 3')",
			"Complete input-output tables using a rule",
		},
		Edge{TopicID: "addition-basics", Weight: 0.2},
		Edge{TopicID: "multiplication-basics", Weight: 0.2}),
}

var dataTopics = []Topic{
	topic("mean-median-mode", "Mean, Median & Mode",
		"Measures of central tendency",
		CategoryData, "📉",
		[3]string{"Finding the Mean", "Finding Median & Mode", "Choosing the Best Measure"},
		[3]string{
			"Calculate the average (mean) of a data set",
			"Find the median (middle) and mode (most frequent)",
			"Decide which measure best represents the data",
		},
		Edge{TopicID: "addition-basics", Weight: 0.2},
		Edge{TopicID: "division-basics", Weight: 0.3}),
	topic("reading-graphs", "Reading Graphs & Charts",
		"Interpreting bar graphs, line graphs, and pie charts",
		CategoryData, "📊",
		[3]string{"Bar & Line Graphs", "Pie Charts", "Drawing Conclusions"},
		[3]string{
			"Read and interpret bar and line graphs",
			"Read and interpret pie/circle charts",
			"Make predictions and draw conclusions from graphs",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.1},
		Edge{TopicID: "percentages-intro", Weight: 0.2}),
	topic("probability-intro", "Basic Probability",
		"Chances and likelihood of events",
		CategoryData, "🎲",
		[3]string{"Probability as a Fraction", "Experimental vs. Theoretical", "Compound Events"},
		[3]string{
			"Express probability as a fraction between 0 and 1",
			"Compare experimental results to theoretical probability",
			"Find probability of combined events",
		},
		Edge{TopicID: "fractions-intro", Weight: 0.3},
		Edge{TopicID: "decimals-intro", Weight: 0.2}),
}

var wordProblemTopics = []Topic{
	topic("multi-step-word-problems", "Multi-Step Word Problems",
		"Breaking down complex problems into steps",
		CategoryWordProblems, "🧩",
		[3]string{"Identifying Steps", "Choosing Operations", "Solving & Checking"},
		[3]string{
			"Read a word problem and identify what steps are needed",
			"Decide which operations to use at each step",
			"Solve multi-step problems and verify the answer makes sense",
		},
		Edge{TopicID: "addition-basics", Weight: 0.1},
		Edge{TopicID: "subtraction-basics", Weight: 0.1},
		Edge{TopicID: "multiplication-basics", Weight: 0.1},
		Edge{TopicID: "division-basics", Weight: 0.1}),
	topic("money-math", "Money Math",
		"Working with dollars and cents",
		CategoryWordProblems, "💰",
		[3]string{"Counting Money", "Making Change", "Budgeting Problems"},
		[3]string{
			"Add and subtract money amounts",
			"Calculate change and compare prices",
			"Solve budgeting and shopping problems",
		},
		Edge{TopicID: "decimals-add-sub", Weight: 0.4},
		Edge{TopicID: "decimals-multiply", Weight: 0.2}),
	topic("time-distance-speed", "Time, Distance & Speed",
		"Relationship between distance, speed, and time",
		CategoryWordProblems, "🏒",
		[3]string{"Reading Time", "Distance = Speed × Time", "Speed & Rate Problems"},
		[3]string{
			"Convert between hours, minutes, and seconds",
			"Use the formula distance = speed × time",
			"Solve real-world speed problems",
		},
		Edge{TopicID: "multiplication-basics", Weight: 0.2},
		Edge{TopicID: "division-basics", Weight: 0.2},
		Edge{TopicID: "unit-rates", Weight: 0.3}),
	topic("measurement-conversion", "Measurement & Conversion",
		"Converting between units of measurement",
		CategoryWordProblems, "📏",
		[3]string{"Metric Units", "Customary Units", "Converting Between Systems"},
		[3]string{
			"Convert within metric (mm, cm, m, km; g, kg; mL, L)",
			"Convert within customary (in, ft, yd; oz, lb; cups, gal)",
			"Approximate conversions between metric and customary",
		},
		Edge{TopicID: "multiplication-basics", Weight: 0.2},
		Edge{TopicID: "division-basics", Weight: 0.2},
		Edge{TopicID: "decimals-multiply", Weight: 0.2}),
}

func seedTopics() []Topic {
	var all []Topic
	all = append(all, wholeNumberTopics...)
	all = append(all, fractionTopics...)
	all = append(all, decimalTopics...)
	all = append(all, percentageTopics...)
	all = append(all, ratioTopics...)
	all = append(all, geometryTopics...)
	all = append(all, algebraTopics...)
	all = append(all, dataTopics...)
	all = append(all, wordProblemTopics...)
	return all
}

func init() {
	topics := seedTopics()
	// The seed is static data: an invalid graph is a programming error,
	// not a runtime condition.
	if err := validateTopics(topics); err != nil {
		panic(err)
	}
	g = buildGraph(topics)
}
