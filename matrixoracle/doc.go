// Package matrixoracle computes the dominant (Perron) eigenvalue and a
// matching non-negative eigenvector of a non-negative integer square
// matrix -- the transition matrix of a train-track map.
//
// The API shape (tol, maxIter parameters; ErrMatrixEigenFailed on
// non-convergence) follows the teacher's own matrix.Eigen/EigenSym
// convention, but the kernel is power iteration rather than Jacobi
// rotation: Jacobi diagonalizes symmetric matrices, while a transition
// matrix is square but generally not symmetric, and Perron-Frobenius
// theory guarantees power iteration converges to exactly the eigenpair
// this package needs (the unique dominant eigenvalue of a primitive
// non-negative matrix) without requiring symmetry. See DESIGN.md for why
// this departs from a literal reuse of the teacher's Jacobi kernel.
package matrixoracle
