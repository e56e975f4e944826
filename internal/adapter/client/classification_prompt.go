package client

import (
	"fmt"
	"strings"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
)

var classificationExamples = map[entity.Category][]string{
	entity.CategoryMathematical: {
		"Find the derivative of 4x^3 - 2x + 7.",
		"Integrate cos(2x) with respect to x.",
		"Compute 38 multiplied by 64.",
		"What is the cube root of 729?",
		"Evaluate the limit of (1 + 1/n)^n as n grows without bound.",
		"Solve 5y - 9 = 26 for y.",
		"Find the perimeter of a rectangle with sides 12 cm and 7 cm.",
		"What is ln(e^5)?",
		"Convert the hexadecimal number 2F to decimal.",
		"What is 12.5% of 880?",
		"Solve the pair of equations x + y = 10 and 2x - y = 5.",
		"Find the gradient of g(x, y, z) = x^2 y + yz^3.",
		"Evaluate the double integral of x + y over the unit square.",
		"Find the determinant of the matrix [[3, 2], [1, 4]].",
		"Solve the differential equation y'' + 4y = 0.",
		"Find the Laplace transform of t^2.",
		"Compute the volume of a cone with radius 3 and height 10.",
		"Sum the geometric series 1 + 1/3 + 1/9 + ... to infinity.",
		"Write the Maclaurin series of cos(x) up to the x^6 term.",
		"Solve for x: 3^(x+1) = 81.",
	},
	entity.CategoryDefinition: {
		"What is photosynthesis?",
		"Define inertia.",
		"Explain the meaning of opportunity cost.",
		"What is meant by a prime number?",
		"Describe the theory of plate tectonics.",
		"What is an ecosystem?",
		"Define the term catalyst.",
		"What does democracy mean?",
		"Explain what a black hole is.",
		"What is the greenhouse effect?",
		"Define osmosis in biology.",
		"What is the theory of relativity about?",
		"Explain the concept of supply and demand.",
		"What is an algorithm?",
		"Define the word metaphor.",
		"What is meant by biodiversity?",
		"Explain Keynesian theory in simple words.",
		"What is a covalent bond?",
		"Define entropy.",
		"What does the term globalization refer to?",
	},
	entity.CategoryFormulation: {
		"Derive the formula for the area of a trapezium.",
		"Express the kinetic energy of a body in terms of its momentum.",
		"Derive the equations of motion for uniformly accelerated motion.",
		"Using Ohm's law, obtain the expression for power dissipated in a resistor.",
		"Derive the lens formula from the geometry of a convex lens.",
		"Formulate the ideal gas law from Boyle's and Charles's laws.",
		"Express compound interest as a formula in terms of principal, rate and time.",
		"Derive the expression for the time period of a simple pendulum.",
		"Using Newton's law of gravitation, derive the escape velocity of a planet.",
		"Obtain the formula for the sum of the first n natural numbers.",
		"Derive the quadratic formula by completing the square.",
		"Formulate the balanced chemical equation for the combustion of methane.",
		"Express the centripetal force in terms of angular velocity.",
		"Derive Bernoulli's equation for steady incompressible flow.",
		"Using conservation of energy, find an expression for the speed of a falling object.",
		"Derive the formula for the capacitance of a parallel plate capacitor.",
		"Express the efficiency of a heat engine in terms of reservoir temperatures.",
		"Formulate the relationship between wavelength, frequency and wave speed.",
		"Derive the expression for the magnetic field at the centre of a circular loop.",
		"Obtain the formula for the distance between two points in a plane.",
	},
	entity.CategoryInferential: {
		"What can be inferred about the author's attitude from the last paragraph?",
		"Why did the character refuse the offer, based on the passage?",
		"What does the rising trend in the experiment suggest about the reaction?",
		"Interpret the meaning of the poem's final stanza.",
		"What is the most likely reason the policy failed, according to the report?",
		"From the data given, what can be deduced about the company's growth?",
		"What does the speaker imply when saying the door was already open?",
		"Why might the population of rabbits have increased in the study area?",
		"What conclusion does the author expect the reader to reach?",
		"Interpret what the graph reveals about urban migration.",
		"What can be deduced about the suspect from the witness statements?",
		"What does the experiment imply about the role of light in germination?",
		"How does the tone of the letter change, and what does that suggest?",
		"What can you infer about the climate of the region from its vegetation?",
		"What underlying message does the fable convey?",
		"Why might the scientists have repeated the trial three times?",
		"What does the historian suggest caused the decline of the empire?",
		"Interpret the symbolism of the storm in the novel.",
		"What assumption does the argument rely on?",
		"Based on the evidence, what motivated the character's decision?",
	},
	entity.CategoryDifferentiation: {
		"Differentiate between mitosis and meiosis.",
		"Compare renewable and non-renewable energy sources.",
		"What is the difference between weather and climate?",
		"Distinguish between a virus and a bacterium.",
		"Compare the features of democracy and monarchy.",
		"How is speed different from velocity?",
		"Contrast prokaryotic and eukaryotic cells.",
		"Differentiate between acids and bases.",
		"Classify the following animals as mammals or reptiles: whale, lizard, bat, turtle.",
		"Compare TCP and UDP.",
		"What distinguishes a simile from a metaphor?",
		"Differentiate between fixed costs and variable costs.",
		"Compare the structures of DNA and RNA.",
		"How does an atom differ from a molecule?",
		"Contrast classical and operant conditioning.",
		"Distinguish between primary and secondary sources in history.",
		"Compare the roles of the legislature and the judiciary.",
		"Differentiate between conduction, convection and radiation.",
		"Group these elements into metals and non-metals: sodium, sulfur, iron, oxygen.",
		"What is the difference between a debit card and a credit card?",
	},
	entity.CategoryAnalytical: {
		"What comes next in the sequence 2, 6, 12, 20, 30?",
		"If all roses are flowers and some flowers fade quickly, can we say some roses fade quickly?",
		"Find the odd one out: apple, banana, carrot, mango.",
		"A is taller than B, and B is taller than C. Who is the shortest?",
		"Complete the pattern: AZ, BY, CX, ?",
		"If CAT is coded as DBU, how is DOG coded?",
		"Five friends sit in a row. Priya is to the left of Ravi and right of Sam. Who sits in the middle?",
		"How many triangles are there in a square divided by both diagonals?",
		"Which number does not belong: 3, 5, 7, 9, 11?",
		"A clock shows quarter past three. What is the angle between the hands?",
		"Find the missing term: 1, 4, 9, 16, ?, 36.",
		"If Monday is the first day, what day is the 45th day?",
		"Arrange the words in a meaningful order: seed, tree, plant, fruit.",
		"Pointing to a photo, Anil says he is my father's only son. Who is in the photo?",
		"What is the next letter in the series J, F, M, A, M?",
		"A train leaves at noon and another an hour later at double speed. When does the second catch up?",
		"If some pens are pencils and all pencils are erasers, are some pens erasers?",
		"Which figure completes the grid of shapes rotating by ninety degrees?",
		"Solve the puzzle: I am an odd number; take away a letter and I become even.",
		"Find the next number: 1, 1, 2, 3, 5, 8, ?",
	},
	entity.CategoryStatistical: {
		"What is the mean of 8, 12, 15 and 25?",
		"What is the probability of getting two heads in two coin tosses?",
		"Find the median of 7, 3, 9, 1, 5.",
		"Interpret the line chart of monthly rainfall.",
		"What is variance?",
		"Find the mode of 4, 6, 6, 7, 9, 6.",
		"What is the chance of drawing an ace from a standard deck?",
		"Describe the shape of this frequency distribution.",
		"What does this scatter plot show about height and weight?",
		"Calculate the standard deviation of 2, 4, 4, 4, 5, 5, 7, 9.",
		"Perform a t-test to compare the mean scores of two classes.",
		"Construct a 90% confidence interval for the proportion of voters.",
		"Interpret a correlation coefficient of -0.8.",
		"Fit a linear regression of sales on advertising spend.",
		"What sample size is needed for a margin of error of 3%?",
		"Interpret the p-value from this hypothesis test.",
		"Analyze this survey data for response bias.",
		"Compute the interquartile range of the exam scores.",
		"Use a box plot to identify outliers in the data.",
		"Estimate the expected value of a lottery ticket.",
	},
	entity.CategoryInference: {
		"Bees pollinate many fruit crops. A new pesticide is reducing bee numbers sharply. Therefore, fruit harvests are likely to ______ Which choice most logically completes the text?",
		"Reading regularly expands vocabulary, and a large vocabulary improves comprehension. So children who read daily will probably ______ Which choice most logically completes the text?",
		"Deserts receive very little rain, and most plants need steady water. This explains why desert plant life is ______ Which choice most logically completes the text?",
		"Shops near the new metro station saw more visitors after it opened. This suggests that public transport ______ Which choice most logically completes the text?",
		"Glaciers reflect sunlight, and as they melt darker ground absorbs more heat. Consequently, melting glaciers may ______ Which choice most logically completes the text?",
		"Students who slept eight hours scored higher on memory tests than those who slept five. This indicates that sleep ______ Which choice most logically completes the text?",
		"Wolves were reintroduced to the park, and deer stopped grazing near rivers. As a result, riverside vegetation ______ Which choice most logically completes the text?",
		"A town switched to LED street lights and its electricity bill fell by a third. The town's decision shows that efficient lighting ______ Which choice most logically completes the text?",
		"Ancient traders carried spices along long routes, and cities grew at the stops along the way. This implies that trade routes ______ Which choice most logically completes the text?",
		"Antibiotics kill bacteria, but overuse lets resistant strains survive and spread. Therefore, careless antibiotic use may ______ Which choice most logically completes the text?",
		"Volunteers who learned a musical instrument later showed stronger attention control. The researchers concluded that musical training ______ Which choice most logically completes the text?",
		"When the library extended its hours, more working adults enrolled in its courses. This suggests that access to learning ______ Which choice most logically completes the text?",
		"Coral depends on algae for food, and warm water drives the algae out. So prolonged heat waves will likely ______ Which choice most logically completes the text?",
		"Companies that offered remote work reported fewer resignations. From this, one can conclude that flexible work ______ Which choice most logically completes the text?",
		"Seeds kept in a cold vault stayed viable for decades. This finding indicates that low temperatures ______ Which choice most logically completes the text?",
		"Farmers who rotated crops had fewer pest outbreaks than those who did not. It follows that crop rotation ______ Which choice most logically completes the text?",
		"Cities with more trees recorded lower summer temperatures. Planting trees in urban areas would therefore ______ Which choice most logically completes the text?",
		"Languages borrowed many words during periods of heavy trade. This pattern shows that contact between cultures ______ Which choice most logically completes the text?",
		"Patients who walked daily after surgery left hospital sooner. The doctors inferred that early movement ______ Which choice most logically completes the text?",
		"Fossils of sea creatures were found on a mountain top. This evidence suggests that the mountain ______ Which choice most logically completes the text?",
	},
}

const classificationRules = `Classification rules, applied before anything else:
- If the question contains the word "define", answer Definition.
- If the question contains the word "theory", answer Definition.
- If the question contains the word "differentiate", answer Differentiation.
- If the question involves numbers, equations or calculations, answer Mathematical.`

// ClassificationPrompt returns the system prompt for the classification call
func ClassificationPrompt() string {
	var b strings.Builder

	b.WriteString("You classify user questions into exactly one of the following categories:\n\n")
	for i, c := range entity.Categories {
		fmt.Fprintf(&b, "%d. %s: %s.\n", i+1, c.Name, c.Description)
	}

	b.WriteString("\n")
	b.WriteString(classificationRules)
	b.WriteString("\n\nExamples:\n")
	for _, c := range entity.Categories {
		fmt.Fprintf(&b, "\n%s\n", c.Name)
		for i, ex := range classificationExamples[c.Name] {
			fmt.Fprintf(&b, "%d. %s\n", i+1, ex)
		}
	}

	fmt.Fprintf(&b, "\nRespond with ONLY the category name, one of: %s.", strings.Join(entity.CategoryNames(), ", "))
	return b.String()
}
