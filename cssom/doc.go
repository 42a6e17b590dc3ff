/*
Package cssom provides interfaces for CSS stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Package
selector constructs the selectors of CSS rules, but knows nothing about
stylesheets. Package cssom connects the two: a rule consists of the
rendered selector(s) as its prelude and a list of declarations.

CSS handling is de-coupled by introducing the interfaces StyleSheet and
Rule. A concrete implementation based on
https://github.com/aymerick/douceur may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
