package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"svmlab/pkg/core"
	"svmlab/pkg/data"
	"svmlab/pkg/model"
	"svmlab/pkg/stats"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --n       : Samples per class. Default = 1000
// --lr      : Learning rate for the sub-gradient updates. Default = 1e-4
// --lambda  : L2 regularization strength. Default = 1e-2
// --iters   : Training passes over the dataset. 0 = one pass per sample pair (n)
// --seed    : Base seed for the Gaussian samplers
// --preview : Number of result rows to preview in console
// --out     : Path to save the columnar results CSV. Default = svm.csv
// --roc     : Path to save the ROC curve PNG ("" disables the plot)
// --scatter : Path to save the two-class scatter PNG ("" disables the plot)
//
// Example:
//   go run main.go --n 1000 --lr 1e-4 --lambda 1e-2 --out svm.csv
//
// ---------------------------------------------------------------------
//

func main() {
	// ---- CLI Flags ----
	n := flag.Int("n", 1000, "Samples per class")
	lr := flag.Float64("lr", 1e-4, "Learning rate")
	lambda := flag.Float64("lambda", 1e-2, "L2 regularization strength")
	iters := flag.Int("iters", 0, "Training passes (0 = n)")
	seed := flag.Uint64("seed", 1, "Base seed for the Gaussian samplers")
	preview := flag.Int("preview", 5, "Number of result rows to preview")
	out := flag.String("out", "svm.csv", "Path of the exported CSV")
	rocPath := flag.String("roc", "roc.png", "Path of the ROC curve PNG (empty disables)")
	scatterPath := flag.String("scatter", "scatter.png", "Path of the class scatter PNG (empty disables)")
	flag.Parse()

	if *iters == 0 {
		*iters = *n
	}

	// ---- Generate two Gaussian classes ----
	// Positive class around (1, 2), negative class around (-1, -2).
	x1 := data.NewGaussian(1, 1, *seed).Sample(*n)
	y1 := data.NewGaussian(2, 1.5, *seed+1).Sample(*n)
	x2 := data.NewGaussian(-1, 1, *seed+2).Sample(*n)
	y2 := data.NewGaussian(-2, 1.5, *seed+3).Sample(*n)

	X1, err := core.FromCols(x1, y1)
	if err != nil {
		log.Fatalf("building positive class matrix: %v", err)
	}
	X2, err := core.FromCols(x2, y2)
	if err != nil {
		log.Fatalf("building negative class matrix: %v", err)
	}
	X, err := core.RBind(X1, X2)
	if err != nil {
		log.Fatalf("stacking classes: %v", err)
	}
	y := append(data.Constant(1, *n), data.Constant(-1, *n)...)

	classSummary("class +1", x1, y1)
	classSummary("class -1", x2, y2)

	// ---- Baseline score before training ----
	svm := model.NewSVM(*lr, *lambda, *iters)
	basePred, err := svm.Baseline(X)
	if err != nil {
		log.Fatalf("baseline prediction: %v", err)
	}
	baseCM, err := model.NewConfusionMatrix(y, basePred)
	if err != nil {
		log.Fatalf("baseline confusion matrix: %v", err)
	}
	fmt.Println("Baseline (all-zero weights):")
	baseCM.Summary()

	// ---- Train ----
	if err := svm.Fit(X, y); err != nil {
		log.Fatalf("training: %v", err)
	}

	// ---- Predict and score ----
	yHat, err := svm.Predict(X)
	if err != nil {
		log.Fatalf("prediction: %v", err)
	}
	fHat, err := svm.DecisionValues(X)
	if err != nil {
		log.Fatalf("decision values: %v", err)
	}
	cm, err := model.NewConfusionMatrix(y, yHat)
	if err != nil {
		log.Fatalf("confusion matrix: %v", err)
	}
	fmt.Println("Trained model:")
	cm.Summary()
	// Sum of ±1 predictions = (#positive - #negative).
	fmt.Printf("Prediction balance: %+.0f\n", stats.Sum(yHat))

	// ---- Platt scaling and ROC sweep ----
	A, B, res, err := model.PlattScaling(y, fHat)
	if err != nil {
		log.Fatalf("platt scaling: %v", err)
	}
	if !res.Converged {
		log.Printf("warning: platt scaling did not converge after %d iterations (sse %.3g)", res.Iterations, res.SSE)
	}
	fmt.Printf("Platt parameters: A=%.4f B=%.4f (%d iterations, sse %.3g)\n", A, B, res.Iterations, res.SSE)
	z := model.Sigmoid(fHat, A, B)

	sweep, err := model.NewROCSweep(y, z, 2*(*n))
	if err != nil {
		log.Fatalf("roc sweep: %v", err)
	}
	fpr, tpr := sweep.Points()

	// ---- Assemble and export results ----
	df := data.NewFrame()
	push := func(name string, col []float64) {
		if err := df.Push(name, col); err != nil {
			log.Fatalf("assembling results: %v", err)
		}
	}
	push("x", X.Col(0))
	push("y", X.Col(1))
	push("g", y)
	push("g_hat", yHat)
	push("w1", []float64{svm.W[0]})
	push("w2", []float64{svm.W[1]})
	push("b", []float64{svm.B})
	push("f_hat", fHat)
	push("z", z)
	push("tpr", tpr)
	push("fpr", fpr)

	df.Print(*preview)
	if err := df.WriteCSV(*out); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Printf("Saved results to %s\n", *out)

	if *rocPath != "" {
		plotROC(fpr, tpr, *rocPath)
	}
	if *scatterPath != "" {
		plotScatter(X, y, svm, *scatterPath)
	}
}

// classSummary prints per-feature mean, standard deviation and range of
// one class.
func classSummary(name string, x, y []float64) {
	xMin, xMax := stats.MinMax(x)
	yMin, yMax := stats.MinMax(y)
	fmt.Printf("%s: x mean %.3f (std %.3f, range [%.3f, %.3f]), y mean %.3f (std %.3f, range [%.3f, %.3f])\n",
		name, stats.Mean(x), stats.Std(x), xMin, xMax, stats.Mean(y), stats.Std(y), yMin, yMax)
}

// plotROC draws the ROC curve with a chance-level diagonal for reference.
func plotROC(fpr, tpr []float64, filename string) {
	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(fpr))
	for i := range fpr {
		pts[i].X = fpr[i]
		pts[i].Y = tpr[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatal(err)
	}
	l.Color = color.RGBA{B: 255, A: 255}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		log.Fatal(err)
	}
	diag.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(diag)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved ROC plot to %s\n", filename)
}

// plotScatter draws the two classes and the learned decision boundary.
func plotScatter(X *core.Matrix, y []float64, svm *model.SVM, filename string) {
	p := plot.New()
	p.Title.Text = "Two-Class Gaussian Data"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	var pos, neg plotter.XYs
	for i := 0; i < X.R; i++ {
		pt := plotter.XY{X: X.At(i, 0), Y: X.At(i, 1)}
		if y[i] == 1 {
			pos = append(pos, pt)
		} else {
			neg = append(neg, pt)
		}
	}

	sp, err := plotter.NewScatter(pos)
	if err != nil {
		log.Fatal(err)
	}
	sp.Color = color.RGBA{B: 255, A: 255}
	sp.GlyphStyle.Shape = draw.CircleGlyph{}
	sp.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sp)

	sn, err := plotter.NewScatter(neg)
	if err != nil {
		log.Fatal(err)
	}
	sn.Color = color.RGBA{R: 255, A: 255}
	sn.GlyphStyle.Shape = draw.PyramidGlyph{}
	sn.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sn)

	// Decision boundary w1*x + w2*y + b = 0, drawn when w2 is usable.
	if len(svm.W) == 2 && svm.W[1] != 0 {
		bound := plotter.XYs{
			{X: -5, Y: (-svm.B - svm.W[0]*(-5)) / svm.W[1]},
			{X: 5, Y: (-svm.B - svm.W[0]*5) / svm.W[1]},
		}
		l, err := plotter.NewLine(bound)
		if err != nil {
			log.Fatal(err)
		}
		l.Color = color.RGBA{G: 160, A: 255}
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved scatter plot to %s\n", filename)
}
